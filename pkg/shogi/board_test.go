package shogi_test

import (
	"testing"

	"github.com/herohde/shogimate1/pkg/shogi"
	"github.com/stretchr/testify/assert"
)

func TestApplyUndoBoardMove(t *testing.T) {
	b := shogi.NewBoard()
	from := shogi.NewSquare(5, 7)
	to := shogi.NewSquare(5, 6)
	b.SetPiece(from, shogi.NewPiece(shogi.Pawn, shogi.Black))

	before := *b
	rec, ok := b.ApplyMove(shogi.NewBoardMove(from, to, false))
	assert.True(t, ok)
	assert.True(t, b.Piece(from).IsEmpty())
	assert.Equal(t, shogi.NewPiece(shogi.Pawn, shogi.Black), b.Piece(to))
	assert.Equal(t, shogi.White, b.Turn())

	b.UndoMove(shogi.NewBoardMove(from, to, false), rec)
	assert.Equal(t, before, *b)
}

func TestApplyUndoCapture(t *testing.T) {
	b := shogi.NewBoard()
	from := shogi.NewSquare(5, 3)
	to := shogi.NewSquare(5, 2)
	b.SetPiece(from, shogi.NewPiece(shogi.Silver, shogi.Black))
	b.SetPiece(to, shogi.NewPiece(shogi.PromotedPawn, shogi.White))

	move := shogi.NewBoardMove(from, to, false)
	rec, ok := b.ApplyMove(move)
	assert.True(t, ok)
	assert.Equal(t, 1, b.Hand(shogi.Black).Count(shogi.Pawn))

	b.UndoMove(move, rec)
	assert.Equal(t, 0, b.Hand(shogi.Black).Count(shogi.Pawn))
	assert.Equal(t, shogi.NewPiece(shogi.PromotedPawn, shogi.White), b.Piece(to))
	assert.Equal(t, shogi.NewPiece(shogi.Silver, shogi.Black), b.Piece(from))
}

func TestApplyUndoPromotion(t *testing.T) {
	b := shogi.NewBoard()
	from := shogi.NewSquare(5, 4)
	to := shogi.NewSquare(5, 3)
	b.SetPiece(from, shogi.NewPiece(shogi.Silver, shogi.Black))

	move := shogi.NewBoardMove(from, to, true)
	rec, ok := b.ApplyMove(move)
	assert.True(t, ok)
	assert.Equal(t, shogi.NewPiece(shogi.PromotedSilver, shogi.Black), b.Piece(to))

	b.UndoMove(move, rec)
	assert.Equal(t, shogi.NewPiece(shogi.Silver, shogi.Black), b.Piece(from))
	assert.True(t, b.Piece(to).IsEmpty())
}

func TestApplyUndoDrop(t *testing.T) {
	b := shogi.NewBoard()
	b.AddToHand(shogi.Black, shogi.Pawn, 1)
	to := shogi.NewSquare(5, 5)

	move := shogi.NewDrop(to, shogi.Pawn)
	rec, ok := b.ApplyMove(move)
	assert.True(t, ok)
	assert.Equal(t, shogi.NewPiece(shogi.Pawn, shogi.Black), b.Piece(to))
	assert.Equal(t, 0, b.Hand(shogi.Black).Count(shogi.Pawn))

	b.UndoMove(move, rec)
	assert.True(t, b.Piece(to).IsEmpty())
	assert.Equal(t, 1, b.Hand(shogi.Black).Count(shogi.Pawn))
}

func TestApplyMoveRejectsStructuralMismatch(t *testing.T) {
	b := shogi.NewBoard()

	_, ok := b.ApplyMove(shogi.NewDrop(shogi.NewSquare(5, 5), shogi.Pawn))
	assert.False(t, ok, "drop without a piece in hand must fail")

	_, ok = b.ApplyMove(shogi.NewBoardMove(shogi.NewSquare(1, 1), shogi.NewSquare(1, 2), false))
	assert.False(t, ok, "moving from an empty square must fail")
}

func TestFindKing(t *testing.T) {
	b := shogi.NewBoard()
	sq, ok := b.FindKing(shogi.Black)
	assert.False(t, ok)

	b.SetPiece(shogi.NewSquare(5, 9), shogi.NewPiece(shogi.King, shogi.Black))
	sq, ok = b.FindKing(shogi.Black)
	assert.True(t, ok)
	assert.Equal(t, shogi.NewSquare(5, 9), sq)
}
