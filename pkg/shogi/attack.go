package shogi

// addDelta applies a step offset to a square, returning ok=false if the result falls off the board.
func addDelta(from Square, d delta) (Square, bool) {
	file := from.File() + d.df
	rank := from.Rank() + d.dr
	if !IsOnBoard(file, rank) {
		return 0, false
	}
	return NewSquare(file, rank), true
}

// pieceAttacksSquare reports whether the piece p sitting on from attacks target, walking slide
// directions one square at a time until blocked rather than testing any geometric predicate on
// the (from, target) pair directly.
func pieceAttacksSquare(b *Board, p Piece, from, target Square) bool {
	for _, d := range StepsOf(p) {
		if to, ok := addDelta(from, d); ok && to == target {
			return true
		}
	}
	for _, d := range SlideDirsOf(p) {
		cur := from
		for {
			to, ok := addDelta(cur, d)
			if !ok {
				break
			}
			if to == target {
				return true
			}
			if !b.Piece(to).IsEmpty() {
				break
			}
			cur = to
		}
	}
	return false
}

// IsAttacked reports whether any piece belonging to by attacks sq on the current board.
func IsAttacked(b *Board, sq Square, by Side) bool {
	for from := Square(0); from < NumSquares; from++ {
		p := b.Piece(from)
		if p.IsEmpty() || p.Side != by {
			continue
		}
		if pieceAttacksSquare(b, p, from, sq) {
			return true
		}
	}
	return false
}

// Attackers returns every square holding a by-side piece that attacks sq.
func Attackers(b *Board, sq Square, by Side) []Square {
	var out []Square
	for from := Square(0); from < NumSquares; from++ {
		p := b.Piece(from)
		if p.IsEmpty() || p.Side != by {
			continue
		}
		if pieceAttacksSquare(b, p, from, sq) {
			out = append(out, from)
		}
	}
	return out
}

// InCheck reports whether s's king is currently attacked. A side with no king on the board is
// never in check.
func InCheck(b *Board, s Side) bool {
	kingSq, ok := b.FindKing(s)
	if !ok {
		return false
	}
	return IsAttacked(b, kingSq, s.Opponent())
}
