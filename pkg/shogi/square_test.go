package shogi_test

import (
	"testing"

	"github.com/herohde/shogimate1/pkg/shogi"
	"github.com/stretchr/testify/assert"
)

func TestSquare(t *testing.T) {
	assert.True(t, shogi.NewSquare(5, 5).IsValid())
	assert.False(t, shogi.Square(-1).IsValid())
	assert.False(t, shogi.Square(81).IsValid())

	sq := shogi.NewSquare(9, 1)
	assert.Equal(t, 9, sq.File())
	assert.Equal(t, 1, sq.Rank())
	assert.Equal(t, shogi.Square(0), sq)

	sq = shogi.NewSquare(1, 1)
	assert.Equal(t, 1, sq.File())
	assert.Equal(t, 1, sq.Rank())
	assert.Equal(t, shogi.Square(8), sq)
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "5e", shogi.NewSquare(5, 5).String())
	assert.Equal(t, "1a", shogi.NewSquare(1, 1).String())
	assert.Equal(t, "9i", shogi.NewSquare(9, 9).String())
}

func TestParseSquareStr(t *testing.T) {
	sq, err := shogi.ParseSquareStr("5e")
	assert.NoError(t, err)
	assert.Equal(t, shogi.NewSquare(5, 5), sq)

	_, err = shogi.ParseSquareStr("0e")
	assert.Error(t, err)

	_, err = shogi.ParseSquareStr("5z")
	assert.Error(t, err)

	_, err = shogi.ParseSquareStr("5")
	assert.Error(t, err)
}

func TestIsOnBoard(t *testing.T) {
	assert.True(t, shogi.IsOnBoard(1, 1))
	assert.True(t, shogi.IsOnBoard(9, 9))
	assert.False(t, shogi.IsOnBoard(0, 1))
	assert.False(t, shogi.IsOnBoard(1, 10))
}
