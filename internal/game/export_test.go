package game

import (
	"maps"
	"slices"
)

// RegionsInUse exposes the in-use id set of p to the external tests.
func (g *Game) RegionsInUse(p PlayerID) []RegionID {
	s := g.players.peek(p)
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.regions))
}
