package core

import "strings"

// CastleSide identifies a castling side, or none.
type CastleSide uint8

const (
	NoCastle CastleSide = iota
	KingSide
	QueenSide
)

func (c CastleSide) String() string {
	switch c {
	case KingSide:
		return "O-O"
	case QueenSide:
		return "O-O-O"
	default:
		return ""
	}
}

// CastleRights is the 4-bit castling-availability mask.
type CastleRights uint8

const (
	WhiteKingSide CastleRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

// FullCastleRights is every right set; the starting position's mask.
const FullCastleRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide

// Allows reports whether every right in want is set.
func (c CastleRights) Allows(want CastleRights) bool {
	return c&want == want
}

func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	var sb strings.Builder
	if c.Allows(WhiteKingSide) {
		sb.WriteByte('K')
	}
	if c.Allows(WhiteQueenSide) {
		sb.WriteByte('Q')
	}
	if c.Allows(BlackKingSide) {
		sb.WriteByte('k')
	}
	if c.Allows(BlackQueenSide) {
		sb.WriteByte('q')
	}
	return sb.String()
}

// Move is a parsed move intent: what the SAN parser (or a structured caller)
// wants to happen, prior to disambiguation against the generator's
// candidates. Unset source fields mean "let the generator disambiguate".
type Move struct {
	Kind       Kind       // piece kind moving; Pawn is the SAN default.
	Color      Color      // side to move this is intended for.
	SourceFile int        // 0-7, or -1 if unspecified.
	SourceRank int        // 1-8, or -1 if unspecified.
	To         Square
	Castle     CastleSide // NoCastle unless this is O-O / O-O-O.
	Promotion  Kind       // defaults to Queen; only meaningful on the last rank.
}

// HistoryEntry records one committed move with enough detail to reconstruct
// a game transcript (SAN rendering, PGN export) without re-deriving
// disambiguation from the board.
type HistoryEntry struct {
	Piece            Piece
	From, To         Square
	SourceFileNeeded bool // true iff SAN disambiguation needed the source file
	SourceRankNeeded bool // true iff SAN disambiguation needed the source rank
	Captured         Piece
	EnPassant        bool
	Castle           CastleSide
	Promotion        Kind // zero unless this move promoted
	GaveCheck        bool
	Checkmate        bool
	FullMoveNumber   int
	Mover            Color
}

// String renders the entry as SAN, e.g. "Nbc3+", "exd6", "O-O", "e8=Q#".
func (h HistoryEntry) String() string {
	if h.Castle != NoCastle {
		return h.Castle.String() + h.check()
	}

	var sb strings.Builder
	isPawn := h.Piece.Kind() == Pawn
	if !isPawn {
		sb.WriteString(h.Piece.Kind().String())
		if h.SourceFileNeeded {
			sb.WriteByte('a' + byte(h.From.File()))
		}
		if h.SourceRankNeeded {
			sb.WriteByte(byte('0' + h.From.Rank()))
		}
	} else if h.Captured != 0 || h.EnPassant {
		sb.WriteByte('a' + byte(h.From.File()))
	}

	if h.Captured != 0 || h.EnPassant {
		sb.WriteByte('x')
	}
	sb.WriteString(h.To.String())

	if h.Promotion != 0 {
		sb.WriteByte('=')
		sb.WriteString(h.Promotion.String())
	}
	sb.WriteString(h.check())
	return sb.String()
}

func (h HistoryEntry) check() string {
	switch {
	case h.Checkmate:
		return "#"
	case h.GaveCheck:
		return "+"
	default:
		return ""
	}
}
