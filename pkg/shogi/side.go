package shogi

// Side represents the playing side: Black (Sente, first player) or White (Gote, second player). 1 bit.
type Side uint8

const (
	Black Side = iota
	White
)

const NumSides Side = 2

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

func (s Side) String() string {
	if s == Black {
		return "b"
	}
	return "w"
}

// LastRank returns the far rank from s's own perspective: the rank a forward-only piece (Pawn,
// Lance) can never leave by moving further forward.
func (s Side) LastRank() int {
	if s == Black {
		return 1
	}
	return 9
}

// IsInPromotionZone returns true iff rank lies in s's promotion zone (the last three ranks from
// s's own perspective).
func (s Side) IsInPromotionZone(rank int) bool {
	if s == Black {
		return rank <= 3
	}
	return rank >= 7
}
