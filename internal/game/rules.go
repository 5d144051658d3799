package game

// touches reports whether (x, y) is 4-adjacent to a stone of p.
func (g *Game) touches(p PlayerID, x, y uint32) bool {
	nb, n := g.grid.neighbours(x, y)
	for _, q := range nb[:n] {
		if g.grid.Cell(q.X, q.Y).Owner == p {
			return true
		}
	}
	return false
}

// canExtend: a saturated player may only grow an existing region.
func (g *Game) canExtend(p PlayerID, x, y uint32) bool {
	return !g.players.allRegionsUsed(p) || g.touches(p, x, y)
}

func (g *Game) canPlace(p PlayerID, x, y uint32) bool {
	if !g.players.valid(p) || !g.grid.Contains(x, y) {
		return false
	}
	if !g.grid.Cell(x, y).Empty() {
		return false
	}
	return g.canExtend(p, x, y)
}

// canGolden checks the attacker's side only. Whether the victim can afford
// losing the stone is decided by simulating the move.
func (g *Game) canGolden(p PlayerID, x, y uint32) bool {
	if !g.players.valid(p) || g.players.goldenUsed(p) {
		return false
	}
	if !g.grid.Contains(x, y) {
		return false
	}
	owner := g.grid.Cell(x, y).Owner
	if owner == NoPlayer || owner == p {
		return false
	}
	return g.canExtend(p, x, y)
}
