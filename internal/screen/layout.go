// Package screen pins down the board geometry the web client draws: a
// 640x640 window of 80px squares with white's back rank at the bottom.
// Rendering itself lives in the client; this package is the deterministic
// contract both sides agree on for mapping pixels to squares and back.
package screen

import (
	"fmt"

	"github.com/mgearhart/clickchess-backend/internal/model"
)

const (
	Width      = 640
	Height     = 640
	SquareSize = Width / 8
)

// CoordAt maps a pixel position inside the window to the board coordinate
// drawn there. Screen rows grow downward while ranks grow upward, hence the
// vertical flip.
func CoordAt(px, py int) (model.Coord, error) {
	if px < 0 || px >= Width || py < 0 || py >= Height {
		return model.Coord{}, fmt.Errorf("pixel (%d,%d): %w", px, py, model.ErrOutOfBounds)
	}
	return model.Coord{
		X: px / SquareSize,
		Y: 7 - py/SquareSize,
	}, nil
}

// RectAt is the inverse of CoordAt: the top-left pixel of the square where
// the coordinate is drawn. Sprites and highlight overlays both use it.
func RectAt(c model.Coord) (x, y int) {
	return c.X * SquareSize, (7 - c.Y) * SquareSize
}

// Shade is the checkerboard parity of a square: 0 and 1 alternate between
// the renderer's light and dark square colors.
func Shade(c model.Coord) int {
	return (c.X + c.Y) % 2
}
