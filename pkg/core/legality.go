package core

// IsAttacked reports whether by attacks sq. Unlike the source pattern this
// replaces, it never mutates b: GenerateAttackers takes the attacking side
// as an explicit parameter, so there is nothing to flip and restore. An
// empty sq is evaluated on a clone holding a pawn of the defending side, so
// pawn diagonal attacks count and pawn pushes do not.
func IsAttacked(b *Board, sq Square, by Color) bool {
	if b.PieceAt(sq).IsEmpty() {
		c := b.clone()
		c.squares[sq] = NewPiece(Pawn, by.Opponent())
		b = c
	}
	return len(GenerateAttackers(b, sq, AllKinds, by)) > 0
}

// IsChecked reports whether c's king is currently attacked.
func IsChecked(b *Board, c Color) bool {
	return IsAttacked(b, b.KingSquare(c), c.Opponent())
}

// FilterLegal keeps the candidates that do not leave mover's own king
// attacked after the move. Castling candidates are filtered by the
// castling-eligibility rule (special.go) instead of by simulation, since
// eligibility also depends on the transit squares, not only the final
// position.
func FilterLegal(b *Board, mover Color, cands []Candidate, to Square) []Candidate {
	var out []Candidate
	for _, c := range cands {
		if c.Castle != NoCastle {
			if CastleEligible(b, mover, c.Castle) {
				out = append(out, c)
			}
			continue
		}
		if isLegalSimulated(b, mover, c, to) {
			out = append(out, c)
		}
	}
	return out
}

// isLegalSimulated applies a candidate on a stack-local clone (mailbox plus
// king positions, side-to-move, en passant — the minimal mutable fields) and
// checks whether the mover's own king ends up attacked. The clone is
// discarded on every path; b is never observably mutated.
func isLegalSimulated(b *Board, mover Color, c Candidate, to Square) bool {
	clone := b.clone()

	clone.squares[c.From] = 0
	if c.EnPassantCapture != NoSquare && c.EnPassantCapture.IsValid() {
		clone.squares[c.EnPassantCapture] = 0
	}
	clone.squares[to] = c.Piece
	if c.Piece.Kind() == King {
		if mover == White {
			clone.whiteKing = to
		} else {
			clone.blackKing = to
		}
	}

	return !IsAttacked(clone, clone.KingSquare(mover), mover.Opponent())
}
