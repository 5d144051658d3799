package game_test

import (
	"errors"
	"testing"

	. "gamma/internal/game"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name                         string
		width, height, players, area uint32
		opts                         []Option
		want                         error
	}{
		{name: "zero width", width: 0, height: 5, players: 2, area: 1, want: ErrInvalidParams},
		{name: "zero height", width: 5, height: 0, players: 2, area: 1, want: ErrInvalidParams},
		{name: "zero players", width: 5, height: 5, players: 0, area: 1, want: ErrInvalidParams},
		{name: "zero areas", width: 5, height: 5, players: 2, area: 0, want: ErrInvalidParams},
		{name: "too many cells", width: 100, height: 100, players: 2, area: 1, opts: []Option{WithMaxCells(9999)}, want: ErrOutOfMemory},
		{name: "exactly at limit", width: 100, height: 100, players: 2, area: 1, opts: []Option{WithMaxCells(10000)}},
		{name: "huge player count is lazy", width: 3, height: 3, players: 4294967295, area: 4294967295},
		{name: "1x1", width: 1, height: 1, players: 1, area: 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := New(test.width, test.height, test.players, test.area, test.opts...)
			if !errors.Is(err, test.want) {
				t.Fatalf("New(%d, %d, %d, %d) error = %v, want %v",
					test.width, test.height, test.players, test.area, err, test.want)
			}
			if test.want != nil {
				if g != nil {
					t.Fatalf("expected nil game on error")
				}
				return
			}
			if g.Width() != test.width || g.Height() != test.height || g.Players() != test.players {
				t.Fatalf("dimensions mismatch: got %dx%d/%d", g.Width(), g.Height(), g.Players())
			}
			if got := g.FreeFields(1); got != uint64(test.width)*uint64(test.height) {
				t.Fatalf("free fields on empty board = %d, want %d", got, test.width*test.height)
			}
		})
	}
}

func TestMoveRejectsBadInput(t *testing.T) {
	g := mustNew(t, 4, 4, 2, 2)
	if !g.Move(1, 0, 0) {
		t.Fatalf("expected first move to succeed")
	}
	before := g.Export()

	tests := []struct {
		name   string
		player PlayerID
		x, y   uint32
	}{
		{"player zero", 0, 1, 1},
		{"player above range", 3, 1, 1},
		{"x out of board", 1, 4, 0},
		{"y out of board", 1, 0, 4},
		{"huge coordinates", 1, 4294967295, 4294967295},
		{"occupied by self", 1, 0, 0},
		{"occupied by other", 2, 0, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if g.Move(test.player, test.x, test.y) {
				t.Fatalf("Move(%d, %d, %d) succeeded, want failure", test.player, test.x, test.y)
			}
			assertSameState(t, before, g.Export())
		})
	}
}

func TestRegionLimitScenario(t *testing.T) {
	g := mustNew(t, 4, 4, 2, 1)

	steps := []struct {
		player PlayerID
		x, y   uint32
		want   bool
	}{
		{1, 0, 0, true},
		{2, 3, 3, true},
		{1, 1, 0, true},
		{1, 3, 0, false},
	}
	for i, s := range steps {
		if got := g.Move(s.player, s.x, s.y); got != s.want {
			t.Fatalf("step %d: Move(%d, %d, %d) = %v, want %v", i, s.player, s.x, s.y, got, s.want)
		}
	}

	if got := g.RegionCount(1); got != 1 {
		t.Fatalf("region count of player 1 = %d, want 1", got)
	}
	// Border of {(0,0),(1,0)}: (0,1), (1,1), (2,0).
	if got := g.FreeFields(1); got != 3 {
		t.Fatalf("free fields of player 1 = %d, want 3", got)
	}
	if got := len(g.BorderCells(1)); got != 3 {
		t.Fatalf("border cells of player 1 = %d, want 3", got)
	}
	if got := g.BusyFields(1); got != 2 {
		t.Fatalf("busy fields of player 1 = %d, want 2", got)
	}
	// Player 2 is saturated too; its border is (2,3) and (3,2).
	if got := g.FreeFields(2); got != 2 {
		t.Fatalf("free fields of player 2 = %d, want 2", got)
	}
}

func TestFreeFieldsWhenNotSaturated(t *testing.T) {
	g := mustNew(t, 5, 5, 3, 3)
	g.Move(1, 0, 0)
	g.Move(2, 4, 4)
	g.Move(3, 2, 2)
	for p := PlayerID(1); p <= 3; p++ {
		if got := g.FreeFields(p); got != 22 {
			t.Fatalf("FreeFields(%d) = %d, want 22", p, got)
		}
	}
	if got := g.FreeFields(4); got != 0 {
		t.Fatalf("FreeFields of invalid player = %d, want 0", got)
	}
	if got := g.BusyFields(0); got != 0 {
		t.Fatalf("BusyFields of player 0 = %d, want 0", got)
	}
}

func TestMergeFusesRegions(t *testing.T) {
	g := mustNew(t, 3, 3, 1, 3)
	for _, p := range []Pos{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}} {
		if !g.Move(1, p.X, p.Y) {
			t.Fatalf("Move(1, %d, %d) failed", p.X, p.Y)
		}
	}
	if got := g.RegionCount(1); got != 3 {
		t.Fatalf("region count before merge = %d, want 3", got)
	}
	before := map[RegionID]bool{}
	for _, p := range []Pos{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}} {
		c, _ := g.Cell(p.X, p.Y)
		before[c.Region] = true
	}

	if !g.Move(1, 1, 1) {
		t.Fatalf("bridging move failed")
	}
	if got := g.RegionCount(1); got != 1 {
		t.Fatalf("region count after merge = %d, want 1", got)
	}

	centre, _ := g.Cell(1, 1)
	if !before[centre.Region] {
		t.Fatalf("surviving region %d was not one of the touched regions", centre.Region)
	}
	for _, p := range []Pos{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}} {
		c, _ := g.Cell(p.X, p.Y)
		if c.Region != centre.Region {
			t.Fatalf("cell (%d,%d) has region %d, want %d", p.X, p.Y, c.Region, centre.Region)
		}
	}
	checkInvariants(t, g)
}

func TestMergeFreesIdsForReuse(t *testing.T) {
	g := mustNew(t, 5, 1, 1, 2)
	g.Move(1, 0, 0)
	g.Move(1, 2, 0)
	if g.Move(1, 4, 0) {
		t.Fatalf("third region accepted with limit 2")
	}
	if !g.Move(1, 1, 0) {
		t.Fatalf("merge move failed")
	}
	if !g.Move(1, 4, 0) {
		t.Fatalf("new region after merge failed")
	}
	if got := g.RegionCount(1); got != 2 {
		t.Fatalf("region count = %d, want 2", got)
	}
	checkInvariants(t, g)
}

func TestRenderPacked(t *testing.T) {
	g := mustNew(t, 3, 2, 2, 2)
	if got, want := g.Render(), "...\n...\n"; got != want {
		t.Fatalf("empty board:\n%q\nwant\n%q", got, want)
	}
	g.Move(1, 0, 0)
	g.Move(2, 2, 1)
	if got, want := g.Render(), "..2\n1..\n"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
	if got := g.CellOffset(2, 1); got != 2 {
		t.Fatalf("CellOffset(2, 1) = %d, want 2", got)
	}
	if got := g.CellOffset(0, 0); got != 4 {
		t.Fatalf("CellOffset(0, 0) = %d, want 4", got)
	}
}

func TestRenderPadded(t *testing.T) {
	g := mustNew(t, 3, 2, 12, 1)
	g.Move(12, 0, 0)
	g.Move(1, 2, 1)
	want := ".  .  1 \n" + "12 .  . \n"
	if got := g.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
	if got := g.CellWidth(); got != 2 {
		t.Fatalf("CellWidth() = %d, want 2", got)
	}
	out := g.Render()
	if off := g.CellOffset(2, 1); out[off] != '1' {
		t.Fatalf("CellOffset(2, 1) = %d points at %q", off, out[off])
	}
	if off := g.CellOffset(0, 0); out[off:off+2] != "12" {
		t.Fatalf("CellOffset(0, 0) = %d points at %q", off, out[off:off+2])
	}
}

func TestRenderWidthFollowsActivePlayers(t *testing.T) {
	// Ten players declared but only player 3 on the board: packed output.
	g := mustNew(t, 2, 1, 10, 1)
	g.Move(3, 1, 0)
	if got, want := g.Render(), ".3\n"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
	g.Move(10, 0, 0)
	if got, want := g.Render(), "10 3 \n"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func mustNew(t *testing.T, w, h, p, a uint32) *Game {
	t.Helper()
	g, err := New(w, h, p, a)
	if err != nil {
		t.Fatalf("New(%d, %d, %d, %d): %v", w, h, p, a, err)
	}
	return g
}
