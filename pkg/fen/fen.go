// Package fen reads and writes chess positions in Forsyth-Edwards
// Notation, building and inspecting a *core.Board.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/wrenfold/chesscore/pkg/core"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a new board. opts are forwarded to
// core.EmptyBoard (history/repetition limits).
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fenStr string, opts ...core.Option) (*core.Board, error) {
	parts := strings.Split(strings.TrimSpace(fenStr), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: %q", fenStr)
	}

	b := core.EmptyBoard(opts...)

	// (1) Piece placement, rank 8 down to rank 1, file a through h.

	rank, file := 8, 0
	for _, r := range parts[0] {
		switch {
		case r == '/':
			rank--
			file = 0

		case unicode.IsDigit(r):
			file += int(r - '0')

		case unicode.IsLetter(r):
			p, ok := core.ParsePiece(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece %q in FEN: %q", r, fenStr)
			}
			if rank < 1 || rank > 8 || file < 0 || file > 7 {
				return nil, fmt.Errorf("piece placement overruns the board in FEN: %q", fenStr)
			}
			b.Place(core.NewSquare(file, rank), p)
			file++

		default:
			return nil, fmt.Errorf("invalid character %q in FEN: %q", r, fenStr)
		}
	}
	if rank != 1 || file != 8 {
		return nil, fmt.Errorf("invalid number of squares in FEN: %q", fenStr)
	}

	// (2) Active color.

	side, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", fenStr)
	}
	b.SetToMove(side)

	// (3) Castling availability.

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling in FEN: %q", fenStr)
	}
	b.SetCastling(castling)

	// (4) En passant target square.

	if parts[3] != "-" {
		sq, ok := core.ParseSquare(parts[3])
		if !ok {
			return nil, fmt.Errorf("invalid en passant target in FEN: %q", fenStr)
		}
		b.SetEnPassant(sq)
	}

	// (5) Halfmove clock, (6) fullmove number.

	half, err := strconv.Atoi(parts[4])
	if err != nil || half < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", fenStr)
	}
	full, err := strconv.Atoi(parts[5])
	if err != nil || full < 1 {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", fenStr)
	}
	b.SetClocks(half, full)

	b.Seed()
	return b, nil
}

// Encode renders b's current position, active color and clocks as FEN. The
// result does not depend on b's move history beyond what the position
// itself encodes.
func Encode(b *core.Board) string {
	var sb strings.Builder

	for rank := 8; rank >= 1; rank-- {
		blanks := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(core.NewSquare(file, rank))
			if p.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(p.String())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if rank > 1 {
			sb.WriteString("/")
		}
	}

	ep := "-"
	if b.EnPassant().IsValid() {
		ep = b.EnPassant().String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), b.ToMove().String(), b.Castling().String(), ep, b.Halfmoves(), b.Fullmoves())
}

func parseColor(str string) (core.Color, bool) {
	switch str {
	case "w", "W":
		return core.White, true
	case "b", "B":
		return core.Black, true
	default:
		return 0, false
	}
}

func parseCastling(str string) (core.CastleRights, bool) {
	var ret core.CastleRights
	if str == "-" {
		return ret, true
	}
	for _, r := range str {
		switch r {
		case 'K':
			ret |= core.WhiteKingSide
		case 'Q':
			ret |= core.WhiteQueenSide
		case 'k':
			ret |= core.BlackKingSide
		case 'q':
			ret |= core.BlackQueenSide
		default:
			return 0, false
		}
	}
	return ret, true
}
