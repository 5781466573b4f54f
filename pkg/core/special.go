package core

// CastleEligible reports whether side may castle to castleSide right now:
// the right hasn't been lost, every square between king and rook is empty,
// and the king's home, transit and destination squares are all unattacked.
func CastleEligible(b *Board, side Color, castleSide CastleSide) bool {
	rank := 1
	if side == Black {
		rank = 8
	}
	home := NewSquare(4, rank)
	if b.KingSquare(side) != home {
		return false
	}

	var right CastleRights
	var between []Square
	var transit []Square

	switch castleSide {
	case KingSide:
		right = WhiteKingSide
		if side == Black {
			right = BlackKingSide
		}
		between = []Square{NewSquare(5, rank), NewSquare(6, rank)}
		transit = []Square{home, NewSquare(5, rank), NewSquare(6, rank)}
	case QueenSide:
		right = WhiteQueenSide
		if side == Black {
			right = BlackQueenSide
		}
		between = []Square{NewSquare(1, rank), NewSquare(2, rank), NewSquare(3, rank)}
		transit = []Square{home, NewSquare(3, rank), NewSquare(2, rank)}
	default:
		return false
	}

	if !b.Castling().Allows(right) {
		return false
	}
	for _, sq := range between {
		if !b.PieceAt(sq).IsEmpty() {
			return false
		}
	}
	for _, sq := range transit {
		if IsAttacked(b, sq, side.Opponent()) {
			return false
		}
	}
	return true
}

// LegalPromotionKinds are the pieces a pawn may promote to.
var LegalPromotionKinds = [4]Kind{Knight, Bishop, Rook, Queen}

// IsLegalPromotion reports whether k is a legal promotion target.
func IsLegalPromotion(k Kind) bool {
	for _, v := range LegalPromotionKinds {
		if v == k {
			return true
		}
	}
	return false
}

// revokeCastlingRights clears rights made stale by a piece leaving or a rook
// being captured on its home square, per invariant 3: a right, once
// cleared, never returns.
func (b *Board) revokeCastlingRights(sq Square) {
	switch sq {
	case NewSquare(4, 1):
		b.castling &^= WhiteKingSide | WhiteQueenSide
	case NewSquare(4, 8):
		b.castling &^= BlackKingSide | BlackQueenSide
	case NewSquare(0, 1):
		b.castling &^= WhiteQueenSide
	case NewSquare(7, 1):
		b.castling &^= WhiteKingSide
	case NewSquare(0, 8):
		b.castling &^= BlackQueenSide
	case NewSquare(7, 8):
		b.castling &^= BlackKingSide
	}
}
