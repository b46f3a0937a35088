package solver_test

import (
	"testing"

	"github.com/herohde/shogimate1/pkg/shogi"
	"github.com/herohde/shogimate1/pkg/solver"
	"github.com/stretchr/testify/assert"
)

// cornerMatePosition is a corner mate shape: White king cornered at 1a, its only two flight
// squares held by a gold and silver that cannot reach the drop square, and a bishop on the board
// that covers the drop square diagonally so the king cannot capture in. Black drops a gold
// adjacent to the king for an unblockable, uncapturable check.
func cornerMatePosition() *shogi.Board {
	b := shogi.NewBoard()
	b.SetPiece(shogi.NewSquare(1, 1), shogi.NewPiece(shogi.King, shogi.White))
	b.SetPiece(shogi.NewSquare(1, 2), shogi.NewPiece(shogi.Gold, shogi.White))
	b.SetPiece(shogi.NewSquare(2, 2), shogi.NewPiece(shogi.Silver, shogi.White))
	b.SetPiece(shogi.NewSquare(4, 3), shogi.NewPiece(shogi.Bishop, shogi.Black))
	b.SetPiece(shogi.NewSquare(5, 9), shogi.NewPiece(shogi.King, shogi.Black))
	b.AddToHand(shogi.Black, shogi.Gold, 1)
	b.SetTurn(shogi.Black)
	return b
}

func TestIsMateIn1(t *testing.T) {
	b := cornerMatePosition()
	mate := shogi.NewDrop(shogi.NewSquare(2, 1), shogi.Gold)
	assert.True(t, solver.IsMateIn1(b, mate))

	notMate := shogi.NewDrop(shogi.NewSquare(5, 5), shogi.Gold)
	assert.False(t, solver.IsMateIn1(b, notMate))
}

func TestFindMateMovesUnique(t *testing.T) {
	b := cornerMatePosition()
	var stats solver.MateSearchStats
	moves := solver.FindMateMoves(b, &stats)

	assert.Len(t, moves, 1)
	assert.True(t, moves[0].IsDrop())
	assert.Equal(t, shogi.Gold, moves[0].Drop)
	assert.Equal(t, shogi.NewSquare(2, 1), moves[0].To)

	assert.Greater(t, stats.TotalLegalMoves, 0)
	assert.Greater(t, stats.TotalCheckingMoves, 0)
	assert.Equal(t, 1, stats.MateMoves)
}

func TestHasUniqueMateAndGetUniqueMate(t *testing.T) {
	b := cornerMatePosition()
	assert.True(t, solver.HasUniqueMate(b))

	move, ok := solver.GetUniqueMate(b)
	assert.True(t, ok)
	assert.True(t, move.IsDrop())
	assert.Equal(t, shogi.Gold, move.Drop)
}

func TestGetUniqueMateFalseWhenNotUnique(t *testing.T) {
	b := shogi.NewBoard()
	b.SetPiece(shogi.NewSquare(5, 9), shogi.NewPiece(shogi.King, shogi.Black))
	b.SetPiece(shogi.NewSquare(5, 1), shogi.NewPiece(shogi.King, shogi.White))

	_, ok := solver.GetUniqueMate(b)
	assert.False(t, ok)
}

func TestVerify(t *testing.T) {
	b := cornerMatePosition()
	result := solver.Verify(b)

	assert.True(t, result.IsMate)
	assert.True(t, result.IsUnique)
	assert.Equal(t, 1, result.MateCount)
	assert.Len(t, result.Moves, 1)
}
