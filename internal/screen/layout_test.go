package screen

import (
	"errors"
	"testing"

	"github.com/mgearhart/clickchess-backend/internal/model"
)

func TestCoordAt(t *testing.T) {
	tests := []struct {
		name   string
		px, py int
		want   model.Coord
	}{
		{"bottom-left pixel is a1", 0, Height - 1, model.Coord{X: 0, Y: 0}},
		{"top-left pixel is a8", 0, 0, model.Coord{X: 0, Y: 7}},
		{"bottom-right pixel is h1", Width - 1, Height - 1, model.Coord{X: 7, Y: 0}},
		{"inside e2's square", 4*SquareSize + 10, Height - SquareSize - 10, model.Coord{X: 4, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoordAt(tt.px, tt.py)
			if err != nil {
				t.Fatalf("CoordAt(%d,%d): %v", tt.px, tt.py, err)
			}
			if got != tt.want {
				t.Errorf("CoordAt(%d,%d) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestCoordAtOutsideWindow(t *testing.T) {
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {Width, 0}, {0, Height}} {
		if _, err := CoordAt(p[0], p[1]); !errors.Is(err, model.ErrOutOfBounds) {
			t.Errorf("CoordAt(%d,%d) = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
	}
}

func TestRectAtRoundTrips(t *testing.T) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := model.Coord{X: x, Y: y}
			px, py := RectAt(c)
			got, err := CoordAt(px, py)
			if err != nil {
				t.Fatalf("CoordAt(RectAt(%v)): %v", c, err)
			}
			if got != c {
				t.Errorf("round trip %v -> (%d,%d) -> %v", c, px, py, got)
			}
		}
	}
}

func TestShadeAlternates(t *testing.T) {
	if Shade(model.Coord{X: 0, Y: 0}) != 0 {
		t.Error("a1 is not shade 0")
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := model.Coord{X: x, Y: y}
			if x+1 < 8 && Shade(c) == Shade(model.Coord{X: x + 1, Y: y}) {
				t.Fatalf("horizontal neighbors (%d,%d) share a shade", x, y)
			}
			if y+1 < 8 && Shade(c) == Shade(model.Coord{X: x, Y: y + 1}) {
				t.Fatalf("vertical neighbors (%d,%d) share a shade", x, y)
			}
		}
	}
}
