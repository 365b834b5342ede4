package model

import "fmt"

// Coord addresses a single square: X is the file, Y is the rank, both in
// [0,7]. Rank 0 is white's back rank; any vertical flip for drawing is the
// renderer's job, the engine never leaves this orientation.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < 8 && c.Y >= 0 && c.Y < 8
}

func (c Coord) add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Board is an 8x8 grid of optional occupants, indexed [rank][file]. At most
// one piece sits on a square; pieces carry no position of their own.
type Board struct {
	squares [8][8]*Piece
}

var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns a board holding the standard starting arrangement: each
// side's back rank in R N B Q K B N R order and its pawns one rank in front.
func NewBoard() *Board {
	b := &Board{}
	for x, kind := range backRank {
		b.squares[0][x] = &Piece{Kind: kind, Color: White}
		b.squares[7][x] = &Piece{Kind: kind, Color: Black}
	}
	for x := 0; x < 8; x++ {
		b.squares[1][x] = &Piece{Kind: Pawn, Color: White}
		b.squares[6][x] = &Piece{Kind: Pawn, Color: Black}
	}
	return b
}

// OccupantAt returns the piece on c, or nil for an empty square. Coordinates
// off the board yield ErrOutOfBounds.
func (b *Board) OccupantAt(c Coord) (*Piece, error) {
	if !c.InBounds() {
		return nil, fmt.Errorf("occupant at (%d,%d): %w", c.X, c.Y, ErrOutOfBounds)
	}
	return b.squares[c.Y][c.X], nil
}

// at is the unchecked lookup used by move generation, which has already
// bounds-checked every candidate before indexing.
func (b *Board) at(c Coord) *Piece {
	return b.squares[c.Y][c.X]
}

// MovePiece overwrites to with the occupant of from and clears from. It does
// not re-check legality: callers only commit squares produced by LegalMoves.
func (b *Board) MovePiece(from, to Coord) {
	b.squares[to.Y][to.X] = b.squares[from.Y][from.X]
	b.squares[from.Y][from.X] = nil
}

// Squares returns a copy of the grid for serialization. Pieces are immutable
// values, so sharing the pointers is fine.
func (b *Board) Squares() [8][8]*Piece {
	return b.squares
}

// place is a test and setup helper for arbitrary positions.
func (b *Board) place(c Coord, p *Piece) {
	b.squares[c.Y][c.X] = p
}
