package shogi

// pseudoLegalBoardMoves appends every board move (ignoring self-check) available to the piece
// sitting on from.
func pseudoLegalBoardMoves(b *Board, from Square, out []Move) []Move {
	p := b.Piece(from)
	if p.IsEmpty() {
		return out
	}
	side := p.Side

	appendTo := func(to Square) {
		if mustPromote(p.Kind, side, to.Rank()) {
			out = append(out, NewBoardMove(from, to, true))
			return
		}
		out = append(out, NewBoardMove(from, to, false))
		if canPromote(p, from, to) {
			out = append(out, NewBoardMove(from, to, true))
		}
	}

	for _, d := range StepsOf(p) {
		to, ok := addDelta(from, d)
		if !ok {
			continue
		}
		target := b.Piece(to)
		if !target.IsEmpty() && target.Side == side {
			continue
		}
		appendTo(to)
	}
	for _, d := range SlideDirsOf(p) {
		cur := from
		for {
			to, ok := addDelta(cur, d)
			if !ok {
				break
			}
			target := b.Piece(to)
			if !target.IsEmpty() && target.Side == side {
				break
			}
			appendTo(to)
			if !target.IsEmpty() {
				break
			}
			cur = to
		}
	}
	return out
}

// pseudoLegalDrops appends every drop available to side (ignoring self-check and uchifuzume).
func pseudoLegalDrops(b *Board, side Side, out []Move) []Move {
	hand := b.Hand(side)
	for _, kind := range handKinds {
		if hand.Count(kind) == 0 {
			continue
		}
		for sq := Square(0); sq < NumSquares; sq++ {
			if !b.Piece(sq).IsEmpty() {
				continue
			}
			rank := sq.Rank()
			if noFurtherMoves(kind, side, rank) {
				continue
			}
			if kind == Pawn && hasNifu(b, side, sq.File()) {
				continue
			}
			out = append(out, NewDrop(sq, kind))
		}
	}
	return out
}

// PseudoLegalMoves returns every board move and drop available to side, without filtering
// self-check or uchifuzume.
func PseudoLegalMoves(b *Board, side Side) []Move {
	var out []Move
	for sq := Square(0); sq < NumSquares; sq++ {
		p := b.Piece(sq)
		if p.IsEmpty() || p.Side != side {
			continue
		}
		out = pseudoLegalBoardMoves(b, sq, out)
	}
	out = pseudoLegalDrops(b, side, out)
	return out
}

// legalMoves is the shared implementation behind LegalMoves. checkUchifuzume controls whether
// pawn drops that deliver drop-pawn-mate are excluded; callers computing a response side's escape
// moves during an uchifuzume test pass false to keep the recursion one level deep.
func legalMoves(b *Board, side Side, checkUchifuzume bool) []Move {
	candidates := PseudoLegalMoves(b, side)
	out := make([]Move, 0, len(candidates))

	for _, m := range candidates {
		rec, ok := b.ApplyMove(m)
		if !ok {
			continue
		}
		leavesSelfInCheck := InCheck(b, side)
		b.UndoMove(m, rec)
		if leavesSelfInCheck {
			continue
		}
		if checkUchifuzume && isUchifuzume(b, m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// LegalMoves returns every fully legal move available to side: pseudo-legal moves with self-check
// and drop-pawn-mate excluded.
func LegalMoves(b *Board, side Side) []Move {
	return legalMoves(b, side, true)
}

// CheckingMoves returns the subset of side's legal moves that place the opponent in check.
func CheckingMoves(b *Board, side Side) []Move {
	all := LegalMoves(b, side)
	out := make([]Move, 0, len(all))
	opponent := side.Opponent()
	for _, m := range all {
		rec, ok := b.ApplyMove(m)
		if !ok {
			continue
		}
		check := InCheck(b, opponent)
		b.UndoMove(m, rec)
		if check {
			out = append(out, m)
		}
	}
	return out
}

// IsLegalMove reports whether m is one of side's legal moves on b.
func IsLegalMove(b *Board, side Side, m Move) bool {
	for _, cand := range LegalMoves(b, side) {
		if cand.Equals(m) {
			return true
		}
	}
	return false
}
