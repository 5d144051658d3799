package game_test

import (
	"reflect"
	"slices"
	"testing"

	. "gamma/internal/game"
)

func assertSameState(t *testing.T, want, got State) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("state changed:\nwant %+v\ngot  %+v", want, got)
	}
}

// checkInvariants verifies the bookkeeping against a from-scratch scan of
// the board.
func checkInvariants(t *testing.T, g *Game) {
	t.Helper()

	w, h := g.Width(), g.Height()
	busy := map[PlayerID]uint64{}
	regions := map[PlayerID]map[RegionID]bool{}
	seen := make([]bool, int(w)*int(h))

	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			c, _ := g.Cell(x, y)
			if c.Region == Transparent {
				t.Fatalf("cell (%d,%d) left transparent", x, y)
			}
			if c.Empty() != (c.Region == NoRegion) {
				t.Fatalf("cell (%d,%d) owner %d region %d", x, y, c.Owner, c.Region)
			}
			if c.Empty() {
				continue
			}
			busy[c.Owner]++
			if regions[c.Owner] == nil {
				regions[c.Owner] = map[RegionID]bool{}
			}

			idx := int(y)*int(w) + int(x)
			if seen[idx] {
				continue
			}
			// A new component: its id must be unique and cover it exactly.
			if regions[c.Owner][c.Region] {
				t.Fatalf("player %d region %d is split into several components", c.Owner, c.Region)
			}
			regions[c.Owner][c.Region] = true
			stack := []Pos{{X: x, Y: y}}
			seen[idx] = true
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, d := range [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
					nx, ny := int(p.X)+d[0], int(p.Y)+d[1]
					if nx < 0 || ny < 0 || nx >= int(w) || ny >= int(h) {
						continue
					}
					nc, _ := g.Cell(uint32(nx), uint32(ny))
					if nc.Owner != c.Owner {
						continue
					}
					if nc.Region != c.Region {
						t.Fatalf("adjacent cells of player %d have regions %d and %d", c.Owner, c.Region, nc.Region)
					}
					if nidx := ny*int(w) + nx; !seen[nidx] {
						seen[nidx] = true
						stack = append(stack, Pos{X: uint32(nx), Y: uint32(ny)})
					}
				}
			}
		}
	}

	for p := PlayerID(1); uint32(p) <= g.Players() && p <= 64; p++ {
		if got := g.BusyFields(p); got != busy[p] {
			t.Fatalf("player %d busy = %d, board has %d", p, got, busy[p])
		}
		var onBoard []RegionID
		for r := range regions[p] {
			onBoard = append(onBoard, r)
		}
		slices.Sort(onBoard)
		if inUse := g.RegionsInUse(p); !slices.Equal(inUse, onBoard) {
			t.Fatalf("player %d ids in use %v, on board %v", p, inUse, onBoard)
		}
		if got := g.RegionCount(p); got != uint32(len(onBoard)) {
			t.Fatalf("player %d region count %d, board has %d", p, got, len(onBoard))
		}
		if got := g.RegionCount(p); got > g.MaxRegions() {
			t.Fatalf("player %d holds %d regions, limit %d", p, got, g.MaxRegions())
		}
		for _, r := range onBoard {
			if uint64(r) >= uint64(g.MaxRegions()) {
				t.Fatalf("player %d uses region id %d outside [0, %d)", p, r, g.MaxRegions())
			}
		}
	}
}
