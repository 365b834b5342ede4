package model

// SimpleMove is a from/to pair, used for echoing the last committed move to
// renderers.
type SimpleMove struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}
