//go:build ebiten

package render

import (
	"image/color"
	"strconv"

	"minesweeper/internal/core"
	"minesweeper/internal/fx"
	"minesweeper/internal/mines"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	gridColor     = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	numberColor   = colornames.Midnightblue
	particleColor = colornames.Orange
)

// BoardPainter draws a board as one pixel per cell scaled up to the tile size.
type BoardPainter struct {
	n     int
	img   *ebiten.Image
	buf   []byte
	codes []uint8
}

// NewBoardPainter allocates a painter for an n x n board.
func NewBoardPainter(n int) *BoardPainter {
	return &BoardPainter{
		n:     n,
		img:   ebiten.NewImage(n, n),
		buf:   make([]byte, 4*n*n),
		codes: make([]uint8, n*n),
	}
}

// Size returns the board edge the painter was built for.
func (bp *BoardPainter) Size() int { return bp.n }

// Draw paints b with its top-left corner at origin, tile pixels per cell.
func (bp *BoardPainter) Draw(dst *ebiten.Image, b *mines.Board, origin core.Vec2, tile float64) {
	if b.Size() != bp.n || tile <= 0 {
		return
	}
	bp.codes = CellCodes(b, bp.codes)
	fillPaletteRGBA(bp.buf, bp.codes, Palette)
	bp.img.WritePixels(bp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(tile, tile)
	op.GeoM.Translate(origin.X, origin.Y)
	dst.DrawImage(bp.img, op)

	span := float32(tile * float64(bp.n))
	for i := 0; i <= bp.n; i++ {
		o := float32(tile * float64(i))
		vector.StrokeLine(dst, float32(origin.X)+o, float32(origin.Y), float32(origin.X)+o, float32(origin.Y)+span, 1, gridColor, false)
		vector.StrokeLine(dst, float32(origin.X), float32(origin.Y)+o, float32(origin.X)+span, float32(origin.Y)+o, 1, gridColor, false)
	}

	face := basicfont.Face7x13
	for row := 0; row < bp.n; row++ {
		for col := 0; col < bp.n; col++ {
			code := bp.codes[row*bp.n+col]
			if code == 0 || code >= CodeHidden {
				continue
			}
			x := int(origin.X + (float64(col)+0.5)*tile - 3)
			y := int(origin.Y + (float64(row)+0.5)*tile + 5)
			text.Draw(dst, strconv.Itoa(int(code)), face, x, y, numberColor)
		}
	}
}

// DrawParticles paints each particle as a small square. Particle positions
// are already in screen pixels.
func DrawParticles(dst *ebiten.Image, particles []fx.Particle, offset core.Vec2) {
	for _, p := range particles {
		x := float32(p.Position.X + offset.X)
		y := float32(p.Position.Y + offset.Y)
		vector.DrawFilledRect(dst, x, y, 3, 3, particleColor, false)
	}
}
