package gen_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/herohde/shogimate1/pkg/gen"
	"github.com/herohde/shogimate1/pkg/quality"
	"github.com/herohde/shogimate1/pkg/shogi"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
)

func TestCreateRandomPositionPlacesBothKings(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	b := gen.CreateRandomPosition(r, 10)

	var sawBlackKing, sawWhiteKing bool
	for sq := shogi.Square(0); sq < shogi.NumSquares; sq++ {
		p := b.Piece(sq)
		if p.Kind == shogi.King && p.Side == shogi.Black {
			sawBlackKing = true
		}
		if p.Kind == shogi.King && p.Side == shogi.White {
			sawWhiteKing = true
		}
	}
	assert.True(t, sawBlackKing)
	assert.True(t, sawWhiteKing)
}

func TestCreateRandomPositionIsDeterministicForSeed(t *testing.T) {
	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))

	b1 := gen.CreateRandomPosition(r1, 10)
	b2 := gen.CreateRandomPosition(r2, 10)

	for sq := shogi.Square(0); sq < shogi.NumSquares; sq++ {
		assert.Equal(t, b1.Piece(sq), b2.Piece(sq))
	}
}

func TestGenerateRandomStopsAtAttemptBudget(t *testing.T) {
	impossible := quality.Criteria{RequireUnique: true, MinPieces: 100, MaxPieces: 100}
	puzzles := gen.GenerateRandom(context.Background(), 1, 5, 10, impossible, lang.Some(gen.AttemptBudget{Max: 50}))
	assert.Empty(t, puzzles)
}

func TestGenerateRandomFindsLenientMatches(t *testing.T) {
	lenient := quality.Criteria{RequireUnique: false, MinPieces: 0, MaxPieces: 40}
	puzzles := gen.GenerateRandom(context.Background(), 1, 3, 10, lenient, lang.Some(gen.AttemptBudget{Max: 2000}))
	assert.NotEmpty(t, puzzles)
	assert.LessOrEqual(t, len(puzzles), 3)
}
