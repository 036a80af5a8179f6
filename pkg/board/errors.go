package board

import "errors"

// Sentinel errors returned by the Board façade, compared with errors.Is, matching the
// teacher's style of a plain package-level sentinel (e.g. search.ErrHalted) rather than
// a custom error-code framework.
var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrNoPieceHere      = errors.New("no piece here")
	ErrWrongPlayersTurn = errors.New("wrong player's turn")
	ErrInvalidMove      = errors.New("invalid move")
	ErrNoUndoAvailable  = errors.New("no undo available")
	ErrNoMovesPossible  = errors.New("no moves possible")
)
