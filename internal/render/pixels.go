package render

import (
	"image/color"

	"minesweeper/internal/mines"

	"golang.org/x/image/colornames"
)

// Cell codes written by CellCodes. Values below CodeHidden are revealed
// adjacency counts.
const (
	CodeHidden uint8 = 9 + iota
	CodeFlag
	CodeMine
)

// Palette maps cell codes to tile colours: counts 0 to 8, then hidden, flag
// and mine.
var Palette = []color.RGBA{
	colornames.Lightgray,
	{R: 190, G: 190, B: 200, A: 255},
	{R: 190, G: 200, B: 190, A: 255},
	{R: 200, G: 190, B: 190, A: 255},
	{R: 185, G: 185, B: 205, A: 255},
	{R: 205, G: 185, B: 185, A: 255},
	{R: 185, G: 205, B: 205, A: 255},
	{R: 200, G: 185, B: 205, A: 255},
	{R: 180, G: 180, B: 180, A: 255},
	colornames.Slategray,
	colornames.Tomato,
	colornames.Black,
}

// CellCodes writes one code per cell of b into buf in row-major order and
// returns the slice. buf is grown when it is too small.
func CellCodes(b *mines.Board, buf []uint8) []uint8 {
	n := b.Size()
	if cap(buf) < n*n {
		buf = make([]uint8, n*n)
	}
	buf = buf[:n*n]
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			i := row*n + col
			switch {
			case b.Mine(col, row):
				buf[i] = CodeMine
			case b.Flag(col, row):
				buf[i] = CodeFlag
			case !b.Revealed(col, row):
				buf[i] = CodeHidden
			default:
				buf[i] = uint8(b.Value(col, row))
			}
		}
	}
	return buf
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
