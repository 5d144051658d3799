// Package game implements the gamma board game: players claim cells of a
// rectangular board, connected stones of one player form a region, and no
// player may hold more than a fixed number of regions at once.
//
// A Game is not safe for concurrent use. Callers that share one between
// goroutines must serialise every call.
package game

import (
	"errors"
	"fmt"
	"maps"
)

var (
	// ErrInvalidParams is returned by New when a dimension or count is zero.
	ErrInvalidParams = errors.New("width, height, players and areas must be positive")
	// ErrOutOfMemory is returned by New when the board exceeds the cell limit.
	ErrOutOfMemory = errors.New("board does not fit in memory")
)

// DefaultMaxCells caps the board size New accepts unless overridden.
const DefaultMaxCells uint64 = 1 << 26

type options struct {
	maxCells uint64
}

// Option tunes New.
type Option func(*options)

// WithMaxCells sets the largest width*height New will allocate. Zero keeps
// the default.
func WithMaxCells(n uint64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxCells = n
		}
	}
}

type Game struct {
	grid       *Grid
	players    *registry
	maxRegions uint32
}

// New creates an empty board of width x height for the given number of
// players, each allowed at most areas regions.
func New(width, height, players, areas uint32, opts ...Option) (*Game, error) {
	o := options{maxCells: DefaultMaxCells}
	for _, opt := range opts {
		opt(&o)
	}

	if width == 0 || height == 0 || players == 0 || areas == 0 {
		return nil, fmt.Errorf("%w: got %dx%d, %d players, %d areas",
			ErrInvalidParams, width, height, players, areas)
	}
	if cells := uint64(width) * uint64(height); cells > o.maxCells {
		return nil, fmt.Errorf("%w: %d cells requested, limit is %d",
			ErrOutOfMemory, cells, o.maxCells)
	}

	return &Game{
		grid:       NewGrid(width, height),
		players:    newRegistry(players, areas),
		maxRegions: areas,
	}, nil
}

func (g *Game) Width() uint32      { return g.grid.Width() }
func (g *Game) Height() uint32     { return g.grid.Height() }
func (g *Game) Players() uint32    { return g.players.count }
func (g *Game) MaxRegions() uint32 { return g.maxRegions }

// Cell returns the cell at (x, y) and whether it is on the board.
func (g *Game) Cell(x, y uint32) (Cell, bool) {
	if !g.grid.Contains(x, y) {
		return Cell{Owner: NoPlayer, Region: NoRegion}, false
	}
	return g.grid.Cell(x, y), true
}

// Move places a stone of player on (x, y). It returns false, changing
// nothing, if the move is illegal.
func (g *Game) Move(player PlayerID, x, y uint32) bool {
	if !g.canPlace(player, x, y) {
		return false
	}
	g.place(player, x, y)
	return true
}

// Clone returns an independent deep copy of g.
func (g *Game) Clone() *Game {
	cp := &Game{
		grid: &Grid{
			width:  g.grid.width,
			height: g.grid.height,
			cells:  append([]Cell(nil), g.grid.cells...),
		},
		players:    newRegistry(g.players.count, g.players.maxRegions),
		maxRegions: g.maxRegions,
	}
	for id, s := range g.players.states {
		ps := *s
		ps.regions = maps.Clone(s.regions)
		cp.players.states[id] = &ps
	}
	return cp
}
