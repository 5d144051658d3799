package game

import (
	"strconv"
	"strings"
)

func digits(n uint32) int {
	return len(strconv.FormatUint(uint64(n), 10))
}

// CellWidth is the number of characters Render uses for one cell: the length
// of the highest player id that owns a stone, at least 1.
func (g *Game) CellWidth() int {
	return digits(uint32(g.players.highestActive()))
}

// Render prints the board top row first, one line per row. With single-digit
// players cells are packed; otherwise every cell is padded to CellWidth and
// separated by a space.
func (g *Game) Render() string {
	w, h := g.grid.Width(), g.grid.Height()
	cw := g.CellWidth()

	var sb strings.Builder
	if cw == 1 {
		sb.Grow(int(uint64(w+1) * uint64(h)))
	} else {
		sb.Grow(int(uint64(w) * uint64(cw+1) * uint64(h)))
	}

	for y := int64(h) - 1; y >= 0; y-- {
		for x := uint32(0); x < w; x++ {
			c := g.grid.Cell(x, uint32(y))
			if cw == 1 {
				if c.Empty() {
					sb.WriteByte('.')
				} else {
					sb.WriteByte(byte('0' + c.Owner))
				}
				continue
			}

			id := "."
			if !c.Empty() {
				id = strconv.FormatUint(uint64(c.Owner), 10)
			}
			sb.WriteString(id)
			sb.WriteString(strings.Repeat(" ", cw-len(id)))
			if x != w-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CellOffset returns the byte offset of cell (x, y) in Render's output.
func (g *Game) CellOffset(x, y uint32) int {
	w, h := uint64(g.grid.Width()), uint64(g.grid.Height())
	row := h - 1 - uint64(y)
	cw := uint64(g.CellWidth())
	if cw == 1 {
		return int(row*(w+1) + uint64(x))
	}
	return int(row*w*(cw+1) + uint64(x)*(cw+1))
}
