package shogi

import "fmt"

// Move represents a single Shogi move: either a board move (From valid) or a drop (Drop valid).
// A Move carries no contextual legality information; it is a description of an action to apply,
// not a proof that the action is legal.
type Move struct {
	From, To Square
	Promote  bool

	// Drop is set for a drop move: the Kind to place on To. NoKind for a board move.
	Drop Kind
}

// NewBoardMove constructs a board move.
func NewBoardMove(from, to Square, promote bool) Move {
	return Move{From: from, To: to, Promote: promote}
}

// NewDrop constructs a drop move.
func NewDrop(to Square, kind Kind) Move {
	return Move{To: to, Drop: kind}
}

// IsDrop returns true iff the move is a drop.
func (m Move) IsDrop() bool {
	return m.Drop != NoKind
}

// Equals returns true iff m and o describe the same move.
func (m Move) Equals(o Move) bool {
	if m.IsDrop() || o.IsDrop() {
		return m.IsDrop() == o.IsDrop() && m.Drop == o.Drop && m.To == o.To
	}
	return m.From == o.From && m.To == o.To && m.Promote == o.Promote
}

// String renders the move in USI text: "FfTt[+]" for board moves, "P*Tt" for drops.
func (m Move) String() string {
	if m.IsDrop() {
		return fmt.Sprintf("%v*%v", m.Drop, m.To)
	}
	suffix := ""
	if m.Promote {
		suffix = "+"
	}
	return fmt.Sprintf("%v%v%v", m.From, m.To, suffix)
}

// ParseMove parses USI move text. The dropped or moved piece's side is implied by whichever
// side is to move on the board the text is applied to; it performs no legality checking.
func ParseMove(str string) (Move, error) {
	if len(str) < 2 {
		return Move{}, fmt.Errorf("shogi: invalid move %q", str)
	}

	if str[1] == '*' {
		kind, ok := KindFromLetter(rune(str[0]))
		if !ok || !kind.IsDropEligible() {
			return Move{}, fmt.Errorf("shogi: invalid drop piece in move %q", str)
		}
		to, err := ParseSquareStr(str[2:])
		if err != nil {
			return Move{}, fmt.Errorf("shogi: invalid drop destination in move %q: %w", str, err)
		}
		return NewDrop(to, kind), nil
	}

	promote := false
	if str[len(str)-1] == '+' {
		promote = true
		str = str[:len(str)-1]
	}
	if len(str) != 4 {
		return Move{}, fmt.Errorf("shogi: invalid move %q", str)
	}

	from, err := ParseSquareStr(str[:2])
	if err != nil {
		return Move{}, fmt.Errorf("shogi: invalid origin in move %q: %w", str, err)
	}
	to, err := ParseSquareStr(str[2:])
	if err != nil {
		return Move{}, fmt.Errorf("shogi: invalid destination in move %q: %w", str, err)
	}
	return NewBoardMove(from, to, promote), nil
}
