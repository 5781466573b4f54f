package core

// Status is the result of IsGameOver.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	ThreefoldRepetition
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	default:
		return "unknown"
	}
}

const (
	defaultHistoryLimit    = 4096
	defaultRepetitionLimit = 4096
	fiftyMoveHalfmoves     = 100
	repetitionCount        = 3
)

// Option configures a Board at construction time.
type Option func(*Board)

// WithHistoryLimit caps the number of moves retained in history. The move
// that brings history to n entries ends the game (IsGameOver reports the
// stalemate-equivalent "max history" result, per the resource model); that
// move itself is not rejected.
func WithHistoryLimit(n int) Option {
	return func(b *Board) { b.historyLimit = n }
}

// WithRepetitionLimit caps the number of fingerprints retained for
// repetition detection. Reaching n retained fingerprints ends the game.
func WithRepetitionLimit(n int) Option {
	return func(b *Board) { b.repetitionLimit = n }
}

// Board is a chess position plus enough history to adjudicate the fifty-move
// rule and threefold repetition. Not safe for concurrent use: exactly one
// call into it at a time.
type Board struct {
	squares [NumSquares]Piece

	toMove    Color
	castling  CastleRights
	enPassant Square // NoSquare unless the previous move was a pawn double-push

	halfmoves int // plies since last capture or pawn move
	fullmoves int // incremented after black's move

	whiteKing, blackKing Square

	history      []HistoryEntry
	positionHist []string
	posCount     int

	historyLimit    int
	repetitionLimit int

	// overflow is set to Stalemate once a history/repetition buffer reaches
	// its limit (the "max history" stalemate-equivalent result, spec.md §5),
	// and stays sticky from then on.
	overflow Status
}

// EmptyBoard returns a cleared board: no pieces, white to move, no castling
// rights, no en passant target. FEN import and other collaborators build a
// position by placing pieces on an EmptyBoard.
func EmptyBoard(opts ...Option) *Board {
	b := &Board{
		enPassant:       NoSquare,
		whiteKing:       NoSquare,
		blackKing:       NoSquare,
		historyLimit:    defaultHistoryLimit,
		repetitionLimit: defaultRepetitionLimit,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// DefaultBoard returns a board initialized to the standard starting
// position, both sides to castle, white to move.
func DefaultBoard(opts ...Option) *Board {
	b := EmptyBoard(opts...)

	back := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		b.Place(NewSquare(f, 8), NewPiece(back[f], Black))
		b.Place(NewSquare(f, 7), NewPiece(Pawn, Black))
		b.Place(NewSquare(f, 2), NewPiece(Pawn, White))
		b.Place(NewSquare(f, 1), NewPiece(back[f], White))
	}

	b.toMove = White
	b.castling = FullCastleRights
	b.fullmoves = 1
	b.Seed()
	return b
}

// Place sets the piece code at sq, updating the cached king squares. Used by
// FEN import and DefaultBoard to build a position from scratch; not move
// execution (which goes through the executor so history stays consistent).
func (b *Board) Place(sq Square, p Piece) {
	b.squares[sq] = p
	if p.Kind() == King {
		if p.Color() == White {
			b.whiteKing = sq
		} else {
			b.blackKing = sq
		}
	}
}

// PieceAt returns the piece code on sq (zero if empty).
func (b *Board) PieceAt(sq Square) Piece {
	return b.squares[sq]
}

// ToMove returns the side to move.
func (b *Board) ToMove() Color { return b.toMove }

// SetToMove is used by FEN import to set the active colour.
func (b *Board) SetToMove(c Color) { b.toMove = c }

// Castling returns the castling-rights mask.
func (b *Board) Castling() CastleRights { return b.castling }

// SetCastling is used by FEN import to set castling rights directly.
func (b *Board) SetCastling(c CastleRights) { b.castling = c }

// EnPassant returns the en passant target square, or NoSquare.
func (b *Board) EnPassant() Square { return b.enPassant }

// SetEnPassant is used by FEN import to set the en passant target directly.
func (b *Board) SetEnPassant(sq Square) { b.enPassant = sq }

// Halfmoves returns the plies since the last capture or pawn move.
func (b *Board) Halfmoves() int { return b.halfmoves }

// Fullmoves returns the full-move counter.
func (b *Board) Fullmoves() int { return b.fullmoves }

// SetClocks is used by FEN import to set both counters directly.
func (b *Board) SetClocks(halfmoves, fullmoves int) {
	b.halfmoves = halfmoves
	b.fullmoves = fullmoves
}

// KingSquare returns the cached square of the given colour's king.
func (b *Board) KingSquare(c Color) Square {
	if c == White {
		return b.whiteKing
	}
	return b.blackKing
}

// History returns the executed-move log, oldest first.
func (b *Board) History() []HistoryEntry { return b.history }

// PositionHistory returns the reversible-position fingerprint log.
func (b *Board) PositionHistory() []string { return b.positionHist }

// PosCount returns the number of fingerprints logged since the last
// irreversible move.
func (b *Board) PosCount() int { return b.posCount }

// HistoryCount returns the number of moves executed so far.
func (b *Board) HistoryCount() int { return len(b.history) }

// Seed records the starting fingerprint for a board populated directly via
// Place/SetCastling/SetEnPassant (i.e. by a FEN importer) rather than
// DefaultBoard. Must be called once, after the position is fully set up and
// before any move is applied, so PositionHistory starts non-empty exactly as
// DefaultBoard's does.
func (b *Board) Seed() {
	b.positionHist = append(b.positionHist, Fingerprint(b))
	b.posCount = len(b.positionHist)
}

// clone returns a shallow-state copy for legality's hypothetical evaluation:
// the mailbox and king cache, but not history, which that check never reads.
func (b *Board) clone() *Board {
	c := *b
	c.history = nil
	c.positionHist = nil
	return &c
}

// Clone returns a deep copy of b, including move and position history,
// sharing no mutable state with the original. Used by callers such as the
// engine façade that need to snapshot a position for later take-back.
func (b *Board) Clone() *Board {
	c := *b
	c.history = append([]HistoryEntry(nil), b.history...)
	c.positionHist = append([]string(nil), b.positionHist...)
	return &c
}
