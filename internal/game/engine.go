package game

// repaint recolours the region of owner containing (x, y) to colour to.
// Cells already carrying to are treated as visited, so to must not occur in
// that component anywhere except possibly at (x, y) itself.
func (g *Game) repaint(x, y uint32, owner PlayerID, to RegionID) {
	g.grid.setRegion(x, y, to)
	stack := []Pos{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nb, n := g.grid.neighbours(p.X, p.Y)
		for _, q := range nb[:n] {
			c := g.grid.Cell(q.X, q.Y)
			if c.Owner != owner || c.Region == to {
				continue
			}
			g.grid.setRegion(q.X, q.Y, to)
			stack = append(stack, q)
		}
	}
}

// place puts a stone of p on the empty cell (x, y) and fixes up regions.
// Legality is checked by the caller.
func (g *Game) place(p PlayerID, x, y uint32) {
	g.grid.setOwner(x, y, p)

	// Any touched region may survive; the last one scanned does.
	survivor := NoRegion
	nb, n := g.grid.neighbours(x, y)
	for _, q := range nb[:n] {
		if c := g.grid.Cell(q.X, q.Y); c.Owner == p {
			survivor = c.Region
		}
	}

	if survivor == NoRegion {
		g.grid.setRegion(x, y, g.players.allocate(p))
		g.players.addBusy(p)
		return
	}

	g.grid.setRegion(x, y, survivor)
	for _, q := range nb[:n] {
		c := g.grid.Cell(q.X, q.Y)
		if c.Owner != p || c.Region == survivor {
			continue
		}
		// Merge: the absorbed id is handed back before its cells are repainted.
		g.players.release(p, c.Region)
		g.repaint(q.X, q.Y, p, survivor)
	}
	g.players.addBusy(p)
}
