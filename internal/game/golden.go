package game

// goldenTxn is a speculative removal of a stone from its owner. begin makes
// the structural change, after which exactly one of commit or rollback runs.
type goldenTxn struct {
	g      *Game
	x, y   uint32
	victim PlayerID
	region RegionID

	// pending counts the pieces of the victim's old region that were painted
	// Transparent and still need an id of their own.
	pending uint32
}

func (g *Game) beginGolden(x, y uint32) *goldenTxn {
	c := g.grid.Cell(x, y)
	t := &goldenTxn{g: g, x: x, y: y, victim: c.Owner, region: c.Region}

	g.grid.clear(x, y)
	g.players.release(t.victim, t.region)

	nb, n := g.grid.neighbours(x, y)
	for _, q := range nb[:n] {
		nc := g.grid.Cell(q.X, q.Y)
		if nc.Owner != t.victim || nc.Region == Transparent {
			continue
		}
		g.repaint(q.X, q.Y, t.victim, Transparent)
		t.pending++
	}
	return t
}

// fits reports whether the victim stays within the region limit once every
// pending piece gets its own id.
func (t *goldenTxn) fits() bool {
	count := uint64(t.g.players.regionCount(t.victim)) + uint64(t.pending)
	return count <= uint64(t.g.maxRegions)
}

// rollback restores the state seen before begin. All transparent pieces
// touch (x, y), so one repaint from there recolours all of them.
func (t *goldenTxn) rollback() {
	g := t.g
	g.grid.setOwner(t.x, t.y, t.victim)
	g.players.claim(t.victim, t.region)
	g.repaint(t.x, t.y, t.victim, t.region)
}

// commit gives (x, y) to attacker and assigns fresh ids to the pieces of the
// victim's old region. The pieces are disjoint now that (x, y) is not the
// victim's.
func (t *goldenTxn) commit(attacker PlayerID) {
	g := t.g
	g.place(attacker, t.x, t.y)

	nb, n := g.grid.neighbours(t.x, t.y)
	for _, q := range nb[:n] {
		c := g.grid.Cell(q.X, q.Y)
		if c.Owner != t.victim || c.Region != Transparent {
			continue
		}
		g.repaint(q.X, q.Y, t.victim, g.players.allocate(t.victim))
	}
	g.players.removeBusy(t.victim)
	g.players.markGoldenUsed(attacker)
}

// GoldenMove lets player take the opponent stone at (x, y). It fails, leaving
// the game untouched, when the owner of that stone would end up with more
// regions than allowed.
func (g *Game) GoldenMove(player PlayerID, x, y uint32) bool {
	if !g.canGolden(player, x, y) {
		return false
	}
	t := g.beginGolden(x, y)
	if !t.fits() {
		t.rollback()
		return false
	}
	t.commit(player)
	return true
}

// GoldenPossible reports whether player could make a golden move somewhere
// right now. It simulates the move on every opposing stone until one fits.
func (g *Game) GoldenPossible(player PlayerID) bool {
	if !g.players.valid(player) || g.players.goldenUsed(player) {
		return false
	}
	if !g.players.othersHaveBusy(player) {
		return false
	}
	for x := uint32(0); x < g.grid.Width(); x++ {
		for y := uint32(0); y < g.grid.Height(); y++ {
			if !g.canGolden(player, x, y) {
				continue
			}
			t := g.beginGolden(x, y)
			ok := t.fits()
			t.rollback()
			if ok {
				return true
			}
		}
	}
	return false
}
