package model

import (
	"errors"
	"testing"
)

func TestNewBoardSetup(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		name  string
		coord Coord
		want  *Piece
	}{
		{"white queenside rook", Coord{X: 0, Y: 0}, &Piece{Kind: Rook, Color: White}},
		{"white knight", Coord{X: 1, Y: 0}, &Piece{Kind: Knight, Color: White}},
		{"white bishop", Coord{X: 2, Y: 0}, &Piece{Kind: Bishop, Color: White}},
		{"white queen", Coord{X: 3, Y: 0}, &Piece{Kind: Queen, Color: White}},
		{"white king", Coord{X: 4, Y: 0}, &Piece{Kind: King, Color: White}},
		{"white kingside rook", Coord{X: 7, Y: 0}, &Piece{Kind: Rook, Color: White}},
		{"white pawn", Coord{X: 3, Y: 1}, &Piece{Kind: Pawn, Color: White}},
		{"black queen", Coord{X: 3, Y: 7}, &Piece{Kind: Queen, Color: Black}},
		{"black king", Coord{X: 4, Y: 7}, &Piece{Kind: King, Color: Black}},
		{"black pawn", Coord{X: 0, Y: 6}, &Piece{Kind: Pawn, Color: Black}},
		{"empty middle", Coord{X: 4, Y: 4}, nil},
		{"empty third rank", Coord{X: 0, Y: 2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.OccupantAt(tt.coord)
			if err != nil {
				t.Fatalf("OccupantAt(%v): %v", tt.coord, err)
			}
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("want empty square, got %s %s", got.Color, got.Kind)
			case tt.want != nil && got == nil:
				t.Errorf("want %s %s, got empty square", tt.want.Color, tt.want.Kind)
			case tt.want != nil && got != nil && *got != *tt.want:
				t.Errorf("want %s %s, got %s %s", tt.want.Color, tt.want.Kind, got.Color, got.Kind)
			}
		})
	}
}

func TestOccupantAtOutOfBounds(t *testing.T) {
	b := NewBoard()
	for _, c := range []Coord{{X: -1, Y: 0}, {X: 8, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 8}} {
		if _, err := b.OccupantAt(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("OccupantAt(%v) = %v, want ErrOutOfBounds", c, err)
		}
	}
}

func TestMovePieceIsUnconditional(t *testing.T) {
	b := NewBoard()
	from := Coord{X: 0, Y: 0}
	to := Coord{X: 0, Y: 6} // black pawn: destination is simply overwritten

	b.MovePiece(from, to)

	if occ, _ := b.OccupantAt(from); occ != nil {
		t.Errorf("source square still holds %s %s", occ.Color, occ.Kind)
	}
	occ, _ := b.OccupantAt(to)
	if occ == nil || occ.Kind != Rook || occ.Color != White {
		t.Errorf("destination = %v, want white rook", occ)
	}
}
