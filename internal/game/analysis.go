package game

import (
	"maps"
	"slices"
)

// BusyFields returns the number of cells player owns, 0 for an unknown player.
func (g *Game) BusyFields(player PlayerID) uint64 {
	if !g.players.valid(player) {
		return 0
	}
	return g.players.busy(player)
}

// FreeFields returns how many cells player could take with a normal move.
// A player below the region limit may start anywhere empty; a saturated one
// only on its border.
func (g *Game) FreeFields(player PlayerID) uint64 {
	if !g.players.valid(player) {
		return 0
	}
	if !g.players.allRegionsUsed(player) {
		return g.grid.Size() - g.players.totalBusy()
	}

	var count uint64
	for y := uint32(0); y < g.grid.Height(); y++ {
		for x := uint32(0); x < g.grid.Width(); x++ {
			if g.grid.Cell(x, y).Empty() && g.touches(player, x, y) {
				count++
			}
		}
	}
	return count
}

// BorderCells lists the empty cells 4-adjacent to player's stones, bottom
// row first.
func (g *Game) BorderCells(player PlayerID) []Pos {
	if !g.players.valid(player) {
		return nil
	}
	var out []Pos
	for y := uint32(0); y < g.grid.Height(); y++ {
		for x := uint32(0); x < g.grid.Width(); x++ {
			if g.grid.Cell(x, y).Empty() && g.touches(player, x, y) {
				out = append(out, Pos{X: x, Y: y})
			}
		}
	}
	return out
}

// RegionCount returns how many regions player currently holds.
func (g *Game) RegionCount(player PlayerID) uint32 {
	if !g.players.valid(player) {
		return 0
	}
	return g.players.regionCount(player)
}

// GoldenUsed reports whether player has already spent the golden move.
func (g *Game) GoldenUsed(player PlayerID) bool {
	return g.players.valid(player) && g.players.goldenUsed(player)
}

// HasAction reports whether player can do anything on its turn.
func (g *Game) HasAction(player PlayerID) bool {
	return g.FreeFields(player) != 0 || g.GoldenPossible(player)
}

type PlayerStats struct {
	ID         PlayerID `json:"id"`
	Busy       uint64   `json:"busy"`
	Regions    uint32   `json:"regions"`
	GoldenUsed bool     `json:"goldenUsed"`
}

// State is a deep copy of a game, safe to keep after further moves.
type State struct {
	Width      uint32        `json:"width"`
	Height     uint32        `json:"height"`
	Players    uint32        `json:"players"`
	MaxRegions uint32        `json:"maxRegions"`
	Cells      []Cell        `json:"cells"`
	Stats      []PlayerStats `json:"stats"`
	Cursors    []RegionID    `json:"-"`
}

// Export snapshots the game. Stats holds one entry per player that has ever
// touched the board, in id order.
func (g *Game) Export() State {
	s := State{
		Width:      g.grid.Width(),
		Height:     g.grid.Height(),
		Players:    g.players.count,
		MaxRegions: g.maxRegions,
		Cells:      append([]Cell(nil), g.grid.cells...),
	}
	for _, id := range slices.Sorted(maps.Keys(g.players.states)) {
		ps := g.players.peek(id)
		s.Stats = append(s.Stats, PlayerStats{
			ID:         id,
			Busy:       ps.busy,
			Regions:    uint32(len(ps.regions)),
			GoldenUsed: ps.goldenUsed,
		})
		s.Cursors = append(s.Cursors, ps.cursor)
	}
	return s
}
