package model

// Color is the side a piece belongs to. There is no "no color".
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceKind identifies a piece's movement rules.
type PieceKind string

const (
	King   PieceKind = "king"
	Queen  PieceKind = "queen"
	Rook   PieceKind = "rook"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

// Piece is an immutable value. Two white rooks are interchangeable; a piece's
// position exists only as its slot in the Board.
type Piece struct {
	Kind  PieceKind `json:"kind"`
	Color Color     `json:"color"`
}

var (
	rookDirs      = []Coord{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	bishopDirs    = []Coord{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	knightOffsets = []Coord{{X: 2, Y: 1}, {X: 2, Y: -1}, {X: -2, Y: 1}, {X: -2, Y: -1}, {X: 1, Y: 2}, {X: 1, Y: -2}, {X: -1, Y: 2}, {X: -1, Y: -2}}
	kingOffsets   = []Coord{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
)

// LegalMoves returns every destination consistent with the movement geometry
// and occupancy rules of the piece standing on from. "Legal" here means
// geometry and blocking only; there is no check detection or any other
// higher-level rule. An empty or out-of-range from yields an empty list.
func LegalMoves(b *Board, from Coord) []Coord {
	if !from.InBounds() {
		return nil
	}
	piece := b.at(from)
	if piece == nil {
		return nil
	}
	switch piece.Kind {
	case Pawn:
		return pawnMoves(b, from, piece.Color)
	case Knight:
		return stepMoves(b, from, piece.Color, knightOffsets)
	case Bishop:
		return rayMoves(b, from, piece.Color, bishopDirs)
	case Rook:
		return rayMoves(b, from, piece.Color, rookDirs)
	case Queen:
		// A queen is exactly the union of the rook and bishop rays.
		return append(rayMoves(b, from, piece.Color, rookDirs), rayMoves(b, from, piece.Color, bishopDirs)...)
	case King:
		return stepMoves(b, from, piece.Color, kingOffsets)
	}
	return nil
}

// stepMoves handles the fixed-offset pieces (king, knight): each in-bounds
// offset is reachable when empty or held by the opponent.
func stepMoves(b *Board, from Coord, color Color, offsets []Coord) []Coord {
	moves := []Coord{}
	for _, off := range offsets {
		target := from.add(off)
		if !target.InBounds() {
			continue
		}
		if occ := b.at(target); occ == nil || occ.Color != color {
			moves = append(moves, target)
		}
	}
	return moves
}

// rayMoves casts one ray per direction, stepping a square at a time. Empty
// squares are added and the ray continues; an opposing piece is added and
// stops the ray; an own piece stops the ray without being added.
func rayMoves(b *Board, from Coord, color Color, dirs []Coord) []Coord {
	moves := []Coord{}
	for _, dir := range dirs {
		for target := from.add(dir); target.InBounds(); target = target.add(dir) {
			occ := b.at(target)
			if occ == nil {
				moves = append(moves, target)
				continue
			}
			if occ.Color != color {
				moves = append(moves, target)
			}
			break
		}
	}
	return moves
}

// pawnMoves: advance direction and starting rank are a pure function of
// color. The double step needs the starting rank and both squares empty;
// diagonals are captures only. No en passant, no promotion - a pawn reaching
// the far rank simply stays a pawn, so the forward square can be off-board.
func pawnMoves(b *Board, from Coord, color Color) []Coord {
	dir, startRank := 1, 1
	if color == Black {
		dir, startRank = -1, 6
	}
	moves := []Coord{}
	one := Coord{X: from.X, Y: from.Y + dir}
	if one.InBounds() && b.at(one) == nil {
		moves = append(moves, one)
		two := Coord{X: from.X, Y: from.Y + 2*dir}
		if from.Y == startRank && two.InBounds() && b.at(two) == nil {
			moves = append(moves, two)
		}
	}
	for _, dx := range []int{-1, 1} {
		diag := Coord{X: from.X + dx, Y: from.Y + dir}
		if !diag.InBounds() {
			continue
		}
		if occ := b.at(diag); occ != nil && occ.Color != color {
			moves = append(moves, diag)
		}
	}
	return moves
}
