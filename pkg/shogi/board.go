package shogi

import "strings"

// Board represents a Shogi position: the 81-square mailbox, both hands, and the side to move.
// Board is mutated only through ApplyMove/UndoMove. Not thread-safe on a shared instance.
type Board struct {
	squares [NumSquares]Piece
	hand    [NumSides]Hand
	turn    Side
}

// NewBoard returns an empty board with Black to move.
func NewBoard() *Board {
	return &Board{turn: Black}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Piece returns the piece occupying sq, Empty if none.
func (b *Board) Piece(sq Square) Piece {
	return b.squares[sq]
}

// SetPiece places p (possibly Empty) on sq.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.squares[sq] = p
}

// Turn returns the side to move.
func (b *Board) Turn() Side {
	return b.turn
}

// SetTurn sets the side to move. Exposed for parsers and generators constructing a Board
// directly rather than through ApplyMove.
func (b *Board) SetTurn(s Side) {
	b.turn = s
}

// Hand returns the hand multiset for the given side.
func (b *Board) Hand(s Side) Hand {
	return b.hand[s]
}

// AddToHand adjusts the count of kind in s's hand by delta. Exposed for parsers and generators.
func (b *Board) AddToHand(s Side, kind Kind, delta int) {
	b.hand[s].add(kind, delta)
}

// FindKing locates s's king. Ok is false if no king of that side is on the board -- callers in
// the attack detector and solver must treat this as "no check, no mate", never panic.
func (b *Board) FindKing(s Side) (Square, bool) {
	for sq := Square(0); sq < NumSquares; sq++ {
		p := b.squares[sq]
		if p.Kind == King && p.Side == s {
			return sq, true
		}
	}
	return 0, false
}

// UndoRecord carries the information ApplyMove needs to reverse via UndoMove.
type UndoRecord struct {
	Captured  Piece // zero value if no capture
	Kind      Kind  // the dropped kind, for a drop move
	Promoted  bool  // true iff this move applied a promotion
}

// ApplyMove mutates the board by making move m for the current side to move, and returns an undo
// record. Ok is false iff m is structurally inconsistent with the board (for a board move: no
// piece on From, wrong side, destination occupied by own piece; for a drop: destination occupied
// by any piece, kind absent from hand) -- it is not a
// legality check: ApplyMove trusts that the caller has already vetted self-check, nifu,
// ikidokoro-nashi and uchifuzume, and will happily apply a pseudo-legal-but-illegal move.
func (b *Board) ApplyMove(m Move) (UndoRecord, bool) {
	turn := b.turn

	if m.IsDrop() {
		if !b.squares[m.To].IsEmpty() || b.hand[turn].Count(m.Drop) < 1 {
			return UndoRecord{}, false
		}

		b.squares[m.To] = Piece{Kind: m.Drop, Side: turn}
		b.hand[turn].add(m.Drop, -1)
		b.turn = turn.Opponent()
		return UndoRecord{Kind: m.Drop}, true
	}

	moving := b.squares[m.From]
	if moving.IsEmpty() || moving.Side != turn {
		return UndoRecord{}, false
	}
	captured := b.squares[m.To]
	if !captured.IsEmpty() && captured.Side == turn {
		return UndoRecord{}, false
	}

	if m.Promote {
		moving = moving.Promote()
	}
	b.squares[m.To] = moving
	b.squares[m.From] = Empty

	if !captured.IsEmpty() {
		b.hand[turn].add(captured.Unpromote().Kind, 1)
	}
	b.turn = turn.Opponent()

	return UndoRecord{Captured: captured, Promoted: m.Promote}, true
}

// UndoMove reverses the move m previously applied with the given undo record. Behavior is
// undefined if m/rec do not correspond to the board's last ApplyMove.
func (b *Board) UndoMove(m Move, rec UndoRecord) {
	b.turn = b.turn.Opponent()
	turn := b.turn

	if m.IsDrop() {
		b.squares[m.To] = Empty
		b.hand[turn].add(m.Drop, 1)
		return
	}

	moving := b.squares[m.To]
	if rec.Promoted {
		moving = moving.Unpromote()
	}
	b.squares[m.From] = moving
	b.squares[m.To] = rec.Captured

	if !rec.Captured.IsEmpty() {
		b.hand[turn].add(rec.Captured.Unpromote().Kind, -1)
	}
}

// PieceCount returns the number of non-empty squares on the board (hands not included).
func (b *Board) PieceCount() int {
	n := 0
	for sq := Square(0); sq < NumSquares; sq++ {
		if !b.squares[sq].IsEmpty() {
			n++
		}
	}
	return n
}

// String renders an ASCII/Japanese-glyph diagram of the position, matching the distilled system's
// text rendering: files 9 (left) down to 1 (right), ranks 1 (top) to 9 (bottom).
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ９ ８ ７ ６ ５ ４ ３ ２ １\n")
	for rank := 1; rank <= NumRanks; rank++ {
		sb.WriteString(string(rune('一' + rank - 1)))
		sb.WriteString(" ")
		for file := NumFiles; file >= 1; file-- {
			p := b.squares[NewSquare(file, rank)]
			if p.IsEmpty() {
				sb.WriteString("・ ")
				continue
			}
			if p.Side == White {
				sb.WriteString("v")
			}
			sb.WriteString(p.Kind.jpName())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	for _, s := range []Side{Black, White} {
		h := b.hand[s]
		if h.IsEmpty() {
			continue
		}
		if s == Black {
			sb.WriteString("先手持ち駒: ")
		} else {
			sb.WriteString("後手持ち駒: ")
		}
		for _, k := range handKinds {
			if n := h.Count(k); n > 0 {
				sb.WriteString(k.jpName())
				if n > 1 {
					sb.WriteString("x")
					sb.WriteString(itoa(n))
				}
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	if b.turn == Black {
		sb.WriteString("先手番\n")
	} else {
		sb.WriteString("後手番\n")
	}
	return sb.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
