package model

import "fmt"

// EventType tags what a click changed.
type EventType string

const (
	EventSelected      EventType = "selected"
	EventMoveCommitted EventType = "moveCommitted"
	EventDeselected    EventType = "deselected"
)

// Event tells the presentation layer what happened to the engine state, so
// it never has to poke at internal fields. Square and LegalMoves are set for
// EventSelected, From and To for EventMoveCommitted. Turn is always the side
// to move after the event.
type Event struct {
	Type       EventType `json:"type"`
	Square     *Coord    `json:"square,omitempty"`
	LegalMoves []Coord   `json:"legalMoves,omitempty"`
	From       *Coord    `json:"from,omitempty"`
	To         *Coord    `json:"to,omitempty"`
	Turn       Color     `json:"turn"`
}

// Engine is the selection/turn state machine over one owned board. It is
// single-threaded: callers serialize access (Game does, via its mutex).
type Engine struct {
	board      *Board
	turn       Color
	selected   *Coord
	legalMoves []Coord
}

// NewEngine returns an engine on a freshly set up board, white to move.
func NewEngine() *Engine {
	return &Engine{
		board: NewBoard(),
		turn:  White,
	}
}

// Turn returns the side to move.
func (e *Engine) Turn() Color {
	return e.turn
}

// Selection returns the selected square and its legal-move set, or nil when
// nothing is selected. The slice is a copy.
func (e *Engine) Selection() (*Coord, []Coord) {
	if e.selected == nil {
		return nil, nil
	}
	sel := *e.selected
	return &sel, append([]Coord(nil), e.legalMoves...)
}

// Squares returns the current board contents for rendering.
func (e *Engine) Squares() [8][8]*Piece {
	return e.board.Squares()
}

// OccupantAt exposes the board's occupancy query.
func (e *Engine) OccupantAt(c Coord) (*Piece, error) {
	return e.board.OccupantAt(c)
}

// HandleClick applies a clicked square against the current state.
//
// With nothing selected, clicking a piece of the side to move selects it and
// computes its legal moves; any other square is a no-op. With a selection,
// clicking one of its legal moves commits the move and flips the turn; any
// other square - the selected square itself, an empty square, even another
// own piece - just abandons the selection. That last case matches the
// original game: a non-matching click never re-selects in the same click.
func (e *Engine) HandleClick(c Coord) (Event, error) {
	if !c.InBounds() {
		return Event{}, fmt.Errorf("click at (%d,%d): %w", c.X, c.Y, ErrOutOfBounds)
	}

	if e.selected == nil {
		piece := e.board.at(c)
		if piece == nil || piece.Color != e.turn {
			return Event{Type: EventDeselected, Turn: e.turn}, nil
		}
		sel := c
		e.selected = &sel
		e.legalMoves = LegalMoves(e.board, c)
		return Event{Type: EventSelected, Square: &sel, LegalMoves: e.legalMoves, Turn: e.turn}, nil
	}

	from := *e.selected
	moves := e.legalMoves
	e.selected = nil
	e.legalMoves = nil

	for _, m := range moves {
		if m == c {
			e.board.MovePiece(from, c)
			e.turn = e.turn.Opposite()
			to := c
			return Event{Type: EventMoveCommitted, From: &from, To: &to, Turn: e.turn}, nil
		}
	}
	return Event{Type: EventDeselected, Turn: e.turn}, nil
}
