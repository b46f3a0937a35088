package shogi

import "fmt"

// Square is a linear index 0..80 into the 9x9 board. Index = (rank-1)*9 + (9-file), so that file
// 9 (leftmost) is the low end of each rank's span and file 1 (rightmost) is the high end --
// matching the distilled source's square_to_index layout exactly, for SFEN compatibility.
type Square int8

const (
	NumFiles  = 9
	NumRanks  = 9
	NumSquares Square = NumFiles * NumRanks
)

// NewSquare builds a Square from 1-indexed file (1..9, 1=rightmost) and rank (1..9, 1=top).
func NewSquare(file, rank int) Square {
	return Square((rank-1)*NumFiles + (NumFiles - file))
}

// IsValid returns true iff the square is within the board.
func (s Square) IsValid() bool {
	return 0 <= s && s < NumSquares
}

// File returns the 1-indexed file (1=rightmost .. 9=leftmost).
func (s Square) File() int {
	return NumFiles - int(s)%NumFiles
}

// Rank returns the 1-indexed rank (1=top .. 9=bottom).
func (s Square) Rank() int {
	return int(s)/NumFiles + 1
}

// String renders the square in USI coordinate form, e.g. "5e" for file 5, rank 5.
func (s Square) String() string {
	return fmt.Sprintf("%d%c", s.File(), 'a'+s.Rank()-1)
}

// IsOnBoard reports whether the given 1-indexed (file, rank) pair lies on the board.
func IsOnBoard(file, rank int) bool {
	return 1 <= file && file <= NumFiles && 1 <= rank && rank <= NumRanks
}

// ParseSquareStr parses a USI destination such as "5e" (file digit, rank letter a..i).
func ParseSquareStr(str string) (Square, error) {
	if len(str) != 2 {
		return 0, fmt.Errorf("shogi: invalid square %q", str)
	}
	file := int(str[0] - '0')
	rank := int(str[1]-'a') + 1
	if !IsOnBoard(file, rank) {
		return 0, fmt.Errorf("shogi: invalid square %q", str)
	}
	return NewSquare(file, rank), nil
}
