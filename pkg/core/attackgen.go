package core

// Candidate is one source square the attacker generator believes could move
// to the query's target square, annotated with whatever extra bookkeeping
// that particular move would need. It says nothing about whether making the
// move would leave the mover's own king in check — see legality.go.
type Candidate struct {
	From   Square
	Piece  Piece
	Castle CastleSide // NoCastle unless this is a king castling move.

	// EnPassantCapture is the square of the pawn to clear, set only on an
	// en passant candidate.
	EnPassantCapture Square
	// MadeEnPassant is the square a pawn passed over on a double push, set
	// only on a two-square pawn advance candidate.
	MadeEnPassant Square
	// Promotion is true iff landing on target promotes a pawn.
	Promotion bool
}

// newCandidate builds a plain (non-pawn, non-castle) candidate. EnPassantCapture
// and MadeEnPassant must default to NoSquare rather than the zero Square
// value, which is the real square a8.
func newCandidate(from Square, p Piece) Candidate {
	return Candidate{From: from, Piece: p, EnPassantCapture: NoSquare, MadeEnPassant: NoSquare}
}

// GenerateAttackers enumerates every square holding a piece of side whose
// kind intersects mask that could reach target, ignoring whether doing so
// exposes that side's own king. This is the Attacker Generator (component
// D): it is also how "is square attacked" and "does any legal move exist"
// are both built, by varying side and mask. A target held by one of side's
// own pieces yields no candidates.
func GenerateAttackers(b *Board, target Square, mask Kind, side Color) []Candidate {
	if occ := b.PieceAt(target); !occ.IsEmpty() && occ.Color() == side {
		return nil
	}

	var out []Candidate

	if mask&Knight != 0 {
		for _, d := range KnightSteps {
			if src, ok := Step(target, d); ok {
				if p := b.PieceAt(src); p.Kind() == Knight && p.Color() == side {
					out = append(out, newCandidate(src, p))
				}
			}
		}
	}

	if mask&(Rook|Queen) != 0 {
		out = append(out, rayAttackers(b, target, Orthogonal, Rook, mask, side)...)
	}
	if mask&(Bishop|Queen) != 0 {
		out = append(out, rayAttackers(b, target, Diagonal, Bishop, mask, side)...)
	}

	if mask&King != 0 {
		for _, d := range KingSteps {
			if src, ok := Step(target, d); ok {
				if p := b.PieceAt(src); p.Kind() == King && p.Color() == side {
					out = append(out, newCandidate(src, p))
				}
			}
		}
		out = append(out, castlingCandidates(b, target, side)...)
	}

	if mask&Pawn != 0 {
		out = append(out, pawnAttackers(b, target, side)...)
	}

	return out
}

// rayAttackers walks each direction from target until it hits the matching
// piece (record), any other piece (stop), or the edge (stop). Shared by the
// rook/queen-orthogonal and bishop/queen-diagonal cases.
func rayAttackers(b *Board, target Square, dirs [4]Direction, straightKind, mask Kind, side Color) []Candidate {
	var out []Candidate
	for _, d := range dirs {
		sq, ok := Step(target, d)
		for ok {
			p := b.PieceAt(sq)
			if p.IsEmpty() {
				sq, ok = Step(sq, d)
				continue
			}
			if p.Color() == side && mask&p.Kind() != 0 && (p.Kind() == straightKind || p.Kind() == Queen) {
				out = append(out, newCandidate(sq, p))
			}
			break
		}
	}
	return out
}

func castlingCandidates(b *Board, target Square, side Color) []Candidate {
	home := NewSquare(4, 1)
	king, queen := NewSquare(6, 1), NewSquare(2, 1)
	rightK, rightQ := WhiteKingSide, WhiteQueenSide
	if side == Black {
		home = NewSquare(4, 8)
		king, queen = NewSquare(6, 8), NewSquare(2, 8)
		rightK, rightQ = BlackKingSide, BlackQueenSide
	}

	if b.KingSquare(side) != home {
		return nil
	}

	switch target {
	case king:
		if b.Castling().Allows(rightK) {
			c := newCandidate(home, b.PieceAt(home))
			c.Castle = KingSide
			return []Candidate{c}
		}
	case queen:
		if b.Castling().Allows(rightQ) {
			c := newCandidate(home, b.PieceAt(home))
			c.Castle = QueenSide
			return []Candidate{c}
		}
	}
	return nil
}

// pawnAttackers handles pawns separately: they capture differently from how
// they advance and their direction depends on colour. White advances toward
// rank 8; black toward rank 1. "Behind" a target is the rank the mover's
// source sits on.
func pawnAttackers(b *Board, target Square, side Color) []Candidate {
	var out []Candidate

	file, rank := target.File(), target.Rank()

	behindRank, startRank, jumpRank, promoRank := rank-1, 2, 4, 8
	if side == Black {
		behindRank, startRank, jumpRank, promoRank = rank+1, 7, 5, 1
	}
	isPromo := rank == promoRank

	trySquare := func(f, r int) (Square, bool) {
		if f < 0 || f > 7 || r < 1 || r > 8 {
			return NoSquare, false
		}
		return NewSquare(f, r), true
	}

	// Advance one.
	if b.PieceAt(target).IsEmpty() {
		if src, ok := trySquare(file, behindRank); ok {
			if p := b.PieceAt(src); p.Kind() == Pawn && p.Color() == side {
				c := newCandidate(src, p)
				c.Promotion = isPromo
				out = append(out, c)
			}
		}

		// Advance two: target must be on the jump rank, the intervening
		// square must be empty and the source (on the start rank) must
		// hold a pawn.
		if rank == jumpRank {
			if mid, ok := trySquare(file, behindRank); ok && b.PieceAt(mid).IsEmpty() {
				if src, ok := trySquare(file, startRank); ok {
					if p := b.PieceAt(src); p.Kind() == Pawn && p.Color() == side {
						c := newCandidate(src, p)
						c.MadeEnPassant = mid
						out = append(out, c)
					}
				}
			}
		}
	}

	// Diagonal capture: source is one file over, on the behind rank. The
	// captured en-passant pawn sits on that same rank on the target's file
	// (the square directly behind the target).
	for _, df := range [2]int{-1, 1} {
		src, ok := trySquare(file+df, behindRank)
		if !ok {
			continue
		}
		p := b.PieceAt(src)
		if p.Kind() != Pawn || p.Color() != side {
			continue
		}
		if other := b.PieceAt(target); !other.IsEmpty() && other.Color() != side {
			c := newCandidate(src, p)
			c.Promotion = isPromo
			out = append(out, c)
			continue
		}
		if ep := b.EnPassant(); ep == target && target.IsValid() {
			epc, _ := trySquare(file, behindRank)
			c := newCandidate(src, p)
			c.EnPassantCapture = epc
			out = append(out, c)
		}
	}

	return out
}
