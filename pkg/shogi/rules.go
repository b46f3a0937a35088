package shogi

// canPromote reports whether a board move of piece p from 'from' to 'to' is eligible for
// promotion: the piece must have a promoted form, and either endpoint must lie in p.Side's
// promotion zone.
func canPromote(p Piece, from, to Square) bool {
	if !p.CanPromote() {
		return false
	}
	return p.Side.IsInPromotionZone(from.Rank()) || p.Side.IsInPromotionZone(to.Rank())
}

// mustPromote reports whether landing on 'to' without promoting would leave the piece with no
// further legal square to move to -- Pawn and Lance on the last rank, Knight on the last two
// ranks. Such a move must promote.
func mustPromote(kind Kind, side Side, toRank int) bool {
	return noFurtherMoves(kind, side, toRank)
}

// noFurtherMoves reports whether an unpromoted piece of kind on the given rank, moving
// strictly forward one (Pawn, Lance) or two (Knight) ranks at a time, would have no rank left
// to advance to. Shared by the forced-promotion rule for board moves and the placement
// restriction for drops.
func noFurtherMoves(kind Kind, side Side, rank int) bool {
	switch kind {
	case Pawn, Lance:
		return rank == side.LastRank()
	case Knight:
		if side == Black {
			return rank <= 2
		}
		return rank >= 8
	default:
		return false
	}
}

// hasNifu reports whether side already has an unpromoted pawn on the given file.
func hasNifu(b *Board, side Side, file int) bool {
	for rank := 1; rank <= NumRanks; rank++ {
		p := b.Piece(NewSquare(file, rank))
		if p.Kind == Pawn && p.Side == side {
			return true
		}
	}
	return false
}

// isUchifuzume reports whether move is an illegal drop-pawn-mate: a pawn drop that checks the
// opponent's king and leaves the opponent with no legal reply. It generates the opponent's
// replies with checkUchifuzume false, so the recursion never goes more than one level
// deep: testing whether this drop mates never itself asks whether one of the opponent's escape
// attempts is uchifuzume.
func isUchifuzume(b *Board, move Move) bool {
	if move.Drop != Pawn {
		return false
	}
	side := b.Turn()
	opponent := side.Opponent()

	rec, ok := b.ApplyMove(move)
	if !ok {
		return false
	}
	defer b.UndoMove(move, rec)

	if !InCheck(b, opponent) {
		return false
	}
	return len(legalMoves(b, opponent, false)) == 0
}
