package core

import "fmt"

// ApplySAN decodes token for the side to move and applies it. The board is
// left unchanged if the move is invalid or ambiguous.
func ApplySAN(b *Board, token string) error {
	m, err := ParseSAN(token, b.ToMove())
	if err != nil {
		return err
	}
	return ApplyMove(b, m)
}

// ApplyMove validates m against the legal candidates for b's side to move
// and, if exactly one survives disambiguation, commits it: clocks, rights,
// en passant, history and the fingerprint log are all updated. The board is
// left unchanged on InvalidMove/AmbiguousMove.
func ApplyMove(b *Board, m Move) error {
	mover := b.ToMove()
	moveNumber := b.fullmoves

	var all []Candidate
	if m.Castle != NoCastle {
		all = GenerateAttackers(b, m.To, King, mover)
	} else {
		all = GenerateAttackers(b, m.To, m.Kind, mover)
	}

	legal := FilterLegal(b, mover, all, m.To)
	if m.Castle != NoCastle {
		legal = filterCastle(legal, m.Castle)
	}

	candidates := legal
	if m.SourceFile >= 0 {
		candidates = filterByFile(candidates, m.SourceFile)
	}
	if m.SourceRank >= 0 {
		candidates = filterByRank(candidates, m.SourceRank)
	}

	if len(candidates) == 0 {
		return fmt.Errorf("%w: no legal move matches", ErrInvalidMove)
	}
	if len(candidates) > 1 {
		return fmt.Errorf("%w: %d legal candidates match", ErrAmbiguousMove, len(candidates))
	}
	chosen := candidates[0]

	if chosen.Promotion {
		promo := m.Promotion
		if promo == 0 {
			promo = Queen
		}
		if !IsLegalPromotion(promo) {
			return fmt.Errorf("%w: illegal promotion piece %v", ErrInvalidMove, promo)
		}
	}

	fileNeeded, rankNeeded := disambiguation(legal, chosen.From)

	entry := HistoryEntry{
		Piece:            chosen.Piece,
		From:             chosen.From,
		To:               m.To,
		SourceFileNeeded: fileNeeded,
		SourceRankNeeded: rankNeeded,
		EnPassant:        chosen.EnPassantCapture != NoSquare && chosen.EnPassantCapture.IsValid(),
		Castle:           chosen.Castle,
		Mover:            mover,
	}

	irreversible := false

	if chosen.Castle != NoCastle {
		commitCastle(b, mover, chosen.Castle)
		irreversible = false
	} else {
		if cap := b.PieceAt(m.To); !cap.IsEmpty() {
			entry.Captured = cap
			irreversible = true
		}
		if entry.EnPassant {
			entry.Captured = b.PieceAt(chosen.EnPassantCapture)
			b.squares[chosen.EnPassantCapture] = 0
			irreversible = true
		}

		piece := chosen.Piece
		if chosen.Promotion {
			promo := m.Promotion
			if promo == 0 {
				promo = Queen
			}
			piece = NewPiece(promo, mover)
			entry.Promotion = promo
		}
		if piece.Kind() == Pawn {
			irreversible = true
		}

		b.squares[chosen.From] = 0
		b.Place(m.To, piece)

		b.revokeCastlingRights(chosen.From)
		b.revokeCastlingRights(m.To)
	}

	if chosen.MadeEnPassant != NoSquare && chosen.MadeEnPassant.IsValid() {
		b.enPassant = chosen.MadeEnPassant
	} else {
		b.enPassant = NoSquare
	}

	if irreversible {
		b.halfmoves = 0
	} else {
		b.halfmoves++
	}

	b.toMove = mover.Opponent()
	if b.toMove == White {
		b.fullmoves++
	}
	entry.FullMoveNumber = moveNumber

	entry.GaveCheck = IsChecked(b, b.toMove)
	entry.Checkmate = entry.GaveCheck && !hasLegalMove(b, b.toMove)

	appendHistory(b, entry)
	appendFingerprint(b, irreversible)

	return nil
}

func commitCastle(b *Board, side Color, c CastleSide) {
	rank := 1
	if side == Black {
		rank = 8
	}
	kingFrom := NewSquare(4, rank)
	var kingTo, rookFrom, rookTo Square
	if c == KingSide {
		kingTo, rookFrom, rookTo = NewSquare(6, rank), NewSquare(7, rank), NewSquare(5, rank)
	} else {
		kingTo, rookFrom, rookTo = NewSquare(2, rank), NewSquare(0, rank), NewSquare(3, rank)
	}

	king := b.PieceAt(kingFrom)
	rook := b.PieceAt(rookFrom)

	b.squares[kingFrom] = 0
	b.squares[rookFrom] = 0
	b.Place(kingTo, king)
	b.Place(rookTo, rook)

	if side == White {
		b.castling &^= WhiteKingSide | WhiteQueenSide
	} else {
		b.castling &^= BlackKingSide | BlackQueenSide
	}
}

// appendHistory records e and, if that fills the history buffer to its
// configured limit, ends the game: spec.md §5 calls an exhausted buffer a
// "stalemate-equivalent result", so the overflow status is Stalemate (2),
// not one of the other terminal codes.
func appendHistory(b *Board, e HistoryEntry) {
	b.history = append(b.history, e)
	if b.historyLimit > 0 && len(b.history) >= b.historyLimit {
		b.overflow = Stalemate
	}
}

func appendFingerprint(b *Board, irreversible bool) {
	if irreversible {
		b.positionHist = nil
		b.posCount = 0
	}
	b.positionHist = append(b.positionHist, Fingerprint(b))
	b.posCount = len(b.positionHist)
	if b.repetitionLimit > 0 && len(b.positionHist) >= b.repetitionLimit {
		b.overflow = Stalemate
	}
}

func filterCastle(cands []Candidate, side CastleSide) []Candidate {
	var out []Candidate
	for _, c := range cands {
		if c.Castle == side {
			out = append(out, c)
		}
	}
	return out
}

func filterByFile(cands []Candidate, file int) []Candidate {
	var out []Candidate
	for _, c := range cands {
		if c.From.File() == file {
			out = append(out, c)
		}
	}
	return out
}

func filterByRank(cands []Candidate, rank int) []Candidate {
	var out []Candidate
	for _, c := range cands {
		if c.From.Rank() == rank {
			out = append(out, c)
		}
	}
	return out
}

// disambiguation reports whether rendering the move from `from` among the
// legal candidates needs the source file and/or rank to be unambiguous,
// following the standard SAN rule: prefer file, fall back to rank, use both
// only if neither alone disambiguates.
func disambiguation(legal []Candidate, from Square) (fileNeeded, rankNeeded bool) {
	if len(legal) <= 1 {
		return false, false
	}

	conflictFile, conflictRank := false, false
	for _, c := range legal {
		if c.From == from {
			continue
		}
		if c.From.File() == from.File() {
			conflictFile = true
		}
		if c.From.Rank() == from.Rank() {
			conflictRank = true
		}
	}

	switch {
	case !conflictFile:
		return true, false
	case !conflictRank:
		return false, true
	default:
		return true, true
	}
}
