package core

import "errors"

// Sentinel errors returned by ApplySAN/ApplyMove. InvalidMove and
// AmbiguousMove are recoverable: the board is left unchanged and the caller
// may present another move. HistoryOverflow and RepetitionBufferOverflow are
// not returned from a move itself (a legal move that tips a buffer over
// still succeeds) but are surfaced through IsGameOver going terminal; they
// are exported here so callers can recognize the condition by name.
var (
	ErrInvalidMove              = errors.New("invalid move")
	ErrAmbiguousMove            = errors.New("ambiguous move")
	ErrHistoryOverflow          = errors.New("move history full")
	ErrRepetitionBufferOverflow = errors.New("repetition log full")
)
