package core

import "strings"

// Fingerprint returns the canonical repetition-comparison string for b's
// current position: piece placement, side to move, castling rights and the
// en passant target. Halfmove/fullmove counters are excluded — only
// reversible state participates in threefold comparison.
//
//	<placement> <stm> <castle> <ep>
func Fingerprint(b *Board) string {
	var sb strings.Builder

	for rank := 8; rank >= 1; rank-- {
		empties := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p.IsEmpty() {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteByte('0' + byte(empties))
				empties = 0
			}
			sb.WriteString(p.String())
		}
		if empties > 0 {
			sb.WriteByte('0' + byte(empties))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.ToMove().String())
	sb.WriteByte(' ')
	sb.WriteString(b.Castling().String())
	sb.WriteByte(' ')
	if b.EnPassant().IsValid() {
		sb.WriteString(b.EnPassant().String())
	} else {
		sb.WriteByte('-')
	}

	return sb.String()
}
