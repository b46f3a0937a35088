package gen

import (
	"context"
	"math/rand"

	"github.com/herohde/shogimate1/pkg/quality"
	"github.com/herohde/shogimate1/pkg/shogi"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// scatterKinds are the kinds CreateRandomPosition may place on the board besides the two kings.
var scatterKinds = []shogi.Kind{shogi.Rook, shogi.Bishop, shogi.Gold, shogi.Silver, shogi.Knight, shogi.Lance, shogi.Pawn}

// handKinds are the kinds CreateRandomPosition may place directly into a hand.
var handKinds = []shogi.Kind{shogi.Pawn, shogi.Silver, shogi.Gold}

// CreateRandomPosition builds a random position: both kings placed in their own camp, a random
// scatter of up to maxPieces-2 other pieces, and a chance of a few pieces starting in hand. The
// result is not guaranteed to be legal or interesting -- callers filter with quality.IsQualityPosition.
func CreateRandomPosition(r *rand.Rand, maxPieces int) *shogi.Board {
	b := shogi.NewBoard()

	blackKingFile := 1 + r.Intn(shogi.NumFiles)
	blackKingRank := 7 + r.Intn(3)
	b.SetPiece(shogi.NewSquare(blackKingFile, blackKingRank), shogi.NewPiece(shogi.King, shogi.Black))

	whiteKingFile := 1 + r.Intn(shogi.NumFiles)
	whiteKingRank := 1 + r.Intn(3)
	b.SetPiece(shogi.NewSquare(whiteKingFile, whiteKingRank), shogi.NewPiece(shogi.King, shogi.White))

	numPieces := 0
	if maxPieces > 2 {
		numPieces = r.Intn(maxPieces - 1)
	}
	for i := 0; i < numPieces; i++ {
		kind := scatterKinds[r.Intn(len(scatterKinds))]
		side := shogi.Black
		if r.Intn(2) == 0 {
			side = shogi.White
		}

		for attempt := 0; attempt < 100; attempt++ {
			file := 1 + r.Intn(shogi.NumFiles)
			rank := 1 + r.Intn(shogi.NumRanks)
			sq := shogi.NewSquare(file, rank)
			if b.Piece(sq).IsEmpty() {
				b.SetPiece(sq, shogi.NewPiece(kind, side))
				break
			}
		}
	}

	if r.Float64() < 0.3 {
		n := r.Intn(4)
		for i := 0; i < n; i++ {
			kind := handKinds[r.Intn(len(handKinds))]
			side := shogi.Black
			if r.Intn(2) == 0 {
				side = shogi.White
			}
			b.AddToHand(side, kind, 1)
		}
	}

	turn := shogi.Black
	if r.Intn(2) == 1 {
		turn = shogi.White
	}
	b.SetTurn(turn)

	return b
}

// GenerateRandom samples random positions until n pass the quality criteria or the attempt
// budget is exhausted, whichever comes first.
func GenerateRandom(ctx context.Context, seed int64, n, maxPieces int, criteria quality.Criteria, budget lang.Optional[AttemptBudget]) []*shogi.Board {
	maxAttempts := EnforceAttemptBudget(ctx, budget)
	r := rand.New(rand.NewSource(seed))

	var puzzles []*shogi.Board
	attempts := 0
	for len(puzzles) < n && (maxAttempts == 0 || attempts < maxAttempts) {
		candidate := CreateRandomPosition(r, maxPieces)
		if quality.IsQualityPosition(candidate, criteria) {
			puzzles = append(puzzles, candidate)
			logw.Infof(ctx, "found puzzle %v/%v (attempts=%v)", len(puzzles), n, attempts+1)
		}
		attempts++
	}

	if len(puzzles) < n {
		logw.Warningf(ctx, "only found %v/%v puzzles after %v attempts", len(puzzles), n, attempts)
	}
	return puzzles
}
