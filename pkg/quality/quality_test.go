package quality_test

import (
	"testing"

	"github.com/herohde/shogimate1/pkg/quality"
	"github.com/herohde/shogimate1/pkg/shogi"
	"github.com/stretchr/testify/assert"
)

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

func TestCalculate(t *testing.T) {
	b := cornerMatePosition()
	m := quality.Calculate(b)

	assert.Equal(t, 5, m.TotalPieces)
	assert.Equal(t, 1, m.MateMoves)
	assert.Greater(t, m.LegalMoves, 0)
	assert.Greater(t, m.DifficultyScore, 0.0)
}

func TestIsQualityPositionAcceptsUniqueMate(t *testing.T) {
	b := cornerMatePosition()
	assert.True(t, quality.IsQualityPosition(b, quality.DefaultCriteria))
}

func TestIsQualityPositionRejectsOutOfBandPieceCount(t *testing.T) {
	b := cornerMatePosition()
	c := quality.Criteria{RequireUnique: true, MinPieces: 10, MaxPieces: 20}
	assert.False(t, quality.IsQualityPosition(b, c))
}

func TestIsQualityPositionRejectsNoMate(t *testing.T) {
	b := shogi.NewBoard()
	b.SetPiece(shogi.NewSquare(5, 9), shogi.NewPiece(shogi.King, shogi.Black))
	b.SetPiece(shogi.NewSquare(5, 1), shogi.NewPiece(shogi.King, shogi.White))
	b.SetTurn(shogi.Black)

	assert.False(t, quality.IsQualityPosition(b, quality.Criteria{MinPieces: 0, MaxPieces: 20}))
}

func TestFilterPositionsPreservesOrder(t *testing.T) {
	mate := cornerMatePosition()
	notMate := shogi.NewBoard()
	notMate.SetPiece(shogi.NewSquare(5, 9), shogi.NewPiece(shogi.King, shogi.Black))
	notMate.SetPiece(shogi.NewSquare(5, 1), shogi.NewPiece(shogi.King, shogi.White))

	out := quality.FilterPositions([]*shogi.Board{notMate, mate}, quality.DefaultCriteria)
	assert.Len(t, out, 1)
	assert.Same(t, mate, out[0])
}
