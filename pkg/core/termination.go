package core

// IsGameOver classifies the current position per the evaluation order:
// checkmate, then stalemate (including insufficient material), then the
// fifty-move rule, then threefold repetition.
func IsGameOver(b *Board) Status {
	if b.overflow != Ongoing {
		return b.overflow
	}

	side := b.ToMove()
	checked := IsChecked(b, side)
	noMoves := !hasLegalMove(b, side)

	if checked && noMoves {
		return Checkmate
	}
	if hasInsufficientMaterial(b) {
		return Stalemate
	}
	if noMoves {
		return Stalemate
	}
	if b.Halfmoves() >= fiftyMoveHalfmoves {
		return FiftyMoveRule
	}
	if isThreefold(b) {
		return ThreefoldRepetition
	}
	return Ongoing
}

// hasLegalMove reports whether side has at least one legal move, by asking
// every target square for candidates and running the legality filter.
func hasLegalMove(b *Board, side Color) bool {
	for target := Square(0); target < NumSquares; target++ {
		cands := GenerateAttackers(b, target, AllKinds, side)
		if len(FilterLegal(b, side, cands, target)) > 0 {
			return true
		}
	}
	return false
}

// hasInsufficientMaterial is the stalemate-class shortcut: neither side has
// a pawn, rook or queen, and each side has at most one minor piece (a
// bishop or a knight, never both). Same-coloured-bishop draws are not
// treated specially; see DESIGN.md.
func hasInsufficientMaterial(b *Board) bool {
	var bishops, knights [2]int
	for sq := Square(0); sq < NumSquares; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}
		switch p.Kind() {
		case Pawn, Rook, Queen:
			return false
		case Bishop:
			bishops[colorIndex(p.Color())]++
		case Knight:
			knights[colorIndex(p.Color())]++
		}
	}
	for c := 0; c < 2; c++ {
		if bishops[c] > 1 || knights[c] > 1 {
			return false
		}
		if bishops[c] > 0 && knights[c] > 0 {
			return false
		}
	}
	return true
}

func colorIndex(c Color) int {
	if c == White {
		return 0
	}
	return 1
}

// isThreefold reports whether any fingerprint in the position history has
// occurred three or more times.
func isThreefold(b *Board) bool {
	counts := make(map[string]int, len(b.positionHist))
	for _, fp := range b.positionHist {
		counts[fp]++
		if counts[fp] >= repetitionCount {
			return true
		}
	}
	return false
}
