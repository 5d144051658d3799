package game

import "math"

// PlayerID identifies a player. Valid ids are 1..Players().
type PlayerID uint32

// RegionID identifies one of a player's regions. Ids are scoped per player:
// region 3 of player 1 and region 3 of player 2 are unrelated.
type RegionID uint64

const (
	// NoPlayer is the owner of an unclaimed cell.
	NoPlayer PlayerID = 0

	// NoRegion is the region of an unclaimed cell.
	NoRegion RegionID = math.MaxUint64 - 1

	// Transparent marks cells whose region is being recoloured by a golden
	// move. It never survives a public operation.
	Transparent RegionID = math.MaxUint64
)

type Cell struct {
	Owner  PlayerID `json:"owner"`
	Region RegionID `json:"region"`
}

func (c Cell) Empty() bool { return c.Owner == NoPlayer }

type Pos struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

// Grid stores the board row by row, row 0 at the bottom.
type Grid struct {
	width  uint32
	height uint32
	cells  []Cell
}

func NewGrid(width, height uint32) *Grid {
	cells := make([]Cell, uint64(width)*uint64(height))
	for i := range cells {
		cells[i] = Cell{Owner: NoPlayer, Region: NoRegion}
	}
	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) Width() uint32  { return g.width }
func (g *Grid) Height() uint32 { return g.height }
func (g *Grid) Size() uint64   { return uint64(g.width) * uint64(g.height) }

func (g *Grid) Contains(x, y uint32) bool {
	return x < g.width && y < g.height
}

// Cell returns a copy of the cell at (x, y). The caller checks bounds.
func (g *Grid) Cell(x, y uint32) Cell {
	return g.cells[g.index(x, y)]
}

func (g *Grid) index(x, y uint32) uint64 {
	return uint64(y)*uint64(g.width) + uint64(x)
}

func (g *Grid) setOwner(x, y uint32, p PlayerID) {
	g.cells[g.index(x, y)].Owner = p
}

func (g *Grid) setRegion(x, y uint32, r RegionID) {
	g.cells[g.index(x, y)].Region = r
}

func (g *Grid) clear(x, y uint32) {
	g.cells[g.index(x, y)] = Cell{Owner: NoPlayer, Region: NoRegion}
}

// E, N, W, S
var directions = [4][2]int64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// neighbours returns the on-board 4-neighbours of (x, y) in E, N, W, S order.
func (g *Grid) neighbours(x, y uint32) (out [4]Pos, n int) {
	for _, d := range directions {
		nx, ny := int64(x)+d[0], int64(y)+d[1]
		if nx < 0 || ny < 0 || nx >= int64(g.width) || ny >= int64(g.height) {
			continue
		}
		out[n] = Pos{X: uint32(nx), Y: uint32(ny)}
		n++
	}
	return out, n
}
