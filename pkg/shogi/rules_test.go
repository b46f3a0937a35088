package shogi_test

import (
	"testing"

	"github.com/herohde/shogimate1/pkg/shogi"
	"github.com/stretchr/testify/assert"
)

// uchifuzumePosition sets up the textbook drop-pawn-mate shape: a White king cornered behind a
// pawn and a lance that cannot themselves reach the drop square, with the drop square itself
// defended by a black gold so the king cannot capture its way out.
func uchifuzumePosition() *shogi.Board {
	b := shogi.NewBoard()
	b.SetPiece(shogi.NewSquare(1, 1), shogi.NewPiece(shogi.King, shogi.White))
	b.SetPiece(shogi.NewSquare(2, 1), shogi.NewPiece(shogi.Pawn, shogi.White))
	b.SetPiece(shogi.NewSquare(2, 2), shogi.NewPiece(shogi.Lance, shogi.White))
	b.SetPiece(shogi.NewSquare(2, 3), shogi.NewPiece(shogi.Gold, shogi.Black))
	b.SetPiece(shogi.NewSquare(5, 9), shogi.NewPiece(shogi.King, shogi.Black))
	b.AddToHand(shogi.Black, shogi.Pawn, 1)
	b.SetTurn(shogi.Black)
	return b
}

func TestUchifuzumeIsIllegal(t *testing.T) {
	b := uchifuzumePosition()
	mate := shogi.NewDrop(shogi.NewSquare(1, 2), shogi.Pawn)

	assert.False(t, shogi.IsLegalMove(b, shogi.Black, mate), "drop-pawn-mate must not be a legal move")
}

func TestHasNifu(t *testing.T) {
	b := shogi.NewBoard()
	b.SetPiece(shogi.NewSquare(5, 5), shogi.NewPiece(shogi.Pawn, shogi.Black))
	b.SetPiece(shogi.NewSquare(5, 9), shogi.NewPiece(shogi.King, shogi.Black))
	b.AddToHand(shogi.Black, shogi.Pawn, 1)
	b.SetTurn(shogi.Black)

	for _, m := range shogi.LegalMoves(b, shogi.Black) {
		assert.False(t, m.IsDrop() && m.Drop == shogi.Pawn && m.To.File() == 5)
	}
}
