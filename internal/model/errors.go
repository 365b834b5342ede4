package model

import "errors"

// ErrOutOfBounds reports a coordinate outside [0,7]x[0,7]. Move generation
// bounds-checks every candidate before touching the board, so normal play
// never sees it; it exists for callers feeding raw input into the engine.
var ErrOutOfBounds = errors.New("coordinate out of bounds")
