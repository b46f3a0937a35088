package gen

import (
	"context"
	"math/rand"

	"github.com/herohde/shogimate1/pkg/quality"
	"github.com/herohde/shogimate1/pkg/shogi"
	"github.com/seekerror/logw"
)

// NumTemplates is the number of hand-authored mate position templates available to
// CreateTemplatePosition.
const NumTemplates = 4

// sq is a shorthand for shogi.NewSquare in the template constructors below.
func sq(file, rank int) shogi.Square {
	return shogi.NewSquare(file, rank)
}

// CreateTemplatePosition returns one of a fixed set of hand-authored mate-in-1 positions,
// chosen by id modulo NumTemplates. Each template is a small, verified tactical shape (a cornered
// king, a single attacker, and just enough defenders to keep the mating piece safe) rather than a
// position sampled from real play -- useful as a seed for reverse generation and as a fallback
// when random sampling comes up empty.
func CreateTemplatePosition(id int) *shogi.Board {
	switch id % NumTemplates {
	case 0:
		return cornerGoldDropMate()
	case 1:
		return flankGoldDropMate()
	case 2:
		return rookCaptureMate()
	default:
		return backRankGoldDropMate()
	}
}

// cornerGoldDropMate: the White king is boxed at 1a by a gold (which has no backward-diagonal step) and a
// silver (which has no straight-backward step), so neither can reach 2a. Black drops a gold on
// 2a for an adjacent check that cannot be blocked; a bishop several squares away covers 2a along
// the diagonal, so the king cannot capture its way out either.
func cornerGoldDropMate() *shogi.Board {
	b := shogi.NewBoard()
	b.SetPiece(sq(1, 1), shogi.NewPiece(shogi.King, shogi.White))
	b.SetPiece(sq(1, 2), shogi.NewPiece(shogi.Gold, shogi.White))
	b.SetPiece(sq(2, 2), shogi.NewPiece(shogi.Silver, shogi.White))
	b.SetPiece(sq(4, 3), shogi.NewPiece(shogi.Bishop, shogi.Black))
	b.SetPiece(sq(5, 9), shogi.NewPiece(shogi.King, shogi.Black))
	b.AddToHand(shogi.Black, shogi.Gold, 1)
	b.SetTurn(shogi.Black)
	return b
}

// flankGoldDropMate: the mirror idea in the far corner, 9a, boxed by a gold (no backward-diagonal
// step, so it cannot reach 8a) and a silver (no straight-backward step, same reason). Black drops
// a gold on 8a; a bishop several squares away covers 8a along the diagonal so the king cannot
// capture.
func flankGoldDropMate() *shogi.Board {
	b := shogi.NewBoard()
	b.SetPiece(sq(9, 1), shogi.NewPiece(shogi.King, shogi.White))
	b.SetPiece(sq(9, 2), shogi.NewPiece(shogi.Gold, shogi.White))
	b.SetPiece(sq(8, 2), shogi.NewPiece(shogi.Silver, shogi.White))
	b.SetPiece(sq(6, 3), shogi.NewPiece(shogi.Bishop, shogi.Black))
	b.SetPiece(sq(5, 9), shogi.NewPiece(shogi.King, shogi.Black))
	b.AddToHand(shogi.Black, shogi.Gold, 1)
	b.SetTurn(shogi.Black)
	return b
}

// rookCaptureMate: the White king sits behind a pawn with pawns and silvers flanking it -- the
// pawns have no diagonal step and the silvers no sideways step, so none can reach the pawn's
// square. Black's promoted rook captures the pawn to deliver check (being already promoted, it has
// no second, promoting version of the capture), and a lance behind it on the same file covers the
// capturing square so the king cannot retake.
func rookCaptureMate() *shogi.Board {
	b := shogi.NewBoard()
	b.SetPiece(sq(5, 1), shogi.NewPiece(shogi.King, shogi.White))
	b.SetPiece(sq(4, 1), shogi.NewPiece(shogi.Pawn, shogi.White))
	b.SetPiece(sq(6, 1), shogi.NewPiece(shogi.Pawn, shogi.White))
	b.SetPiece(sq(4, 2), shogi.NewPiece(shogi.Silver, shogi.White))
	b.SetPiece(sq(6, 2), shogi.NewPiece(shogi.Silver, shogi.White))
	b.SetPiece(sq(5, 2), shogi.NewPiece(shogi.Pawn, shogi.White))
	b.SetPiece(sq(5, 5), shogi.NewPiece(shogi.PromotedRook, shogi.Black))
	b.SetPiece(sq(5, 6), shogi.NewPiece(shogi.Lance, shogi.Black))
	b.SetPiece(sq(5, 9), shogi.NewPiece(shogi.King, shogi.Black))
	b.SetTurn(shogi.Black)
	return b
}

// backRankGoldDropMate: the same pawn-and-silver box as rookCaptureMate but with the square in
// front of the king left open. Black drops a gold into it; a bishop covers the square diagonally
// so the king cannot capture, and the flanking pawns and silvers have no move that reaches it
// either.
func backRankGoldDropMate() *shogi.Board {
	b := shogi.NewBoard()
	b.SetPiece(sq(5, 1), shogi.NewPiece(shogi.King, shogi.White))
	b.SetPiece(sq(4, 1), shogi.NewPiece(shogi.Pawn, shogi.White))
	b.SetPiece(sq(6, 1), shogi.NewPiece(shogi.Pawn, shogi.White))
	b.SetPiece(sq(4, 2), shogi.NewPiece(shogi.Silver, shogi.White))
	b.SetPiece(sq(6, 2), shogi.NewPiece(shogi.Silver, shogi.White))
	b.SetPiece(sq(7, 4), shogi.NewPiece(shogi.Bishop, shogi.Black))
	b.SetPiece(sq(5, 9), shogi.NewPiece(shogi.King, shogi.Black))
	b.AddToHand(shogi.Black, shogi.Gold, 1)
	b.SetTurn(shogi.Black)
	return b
}

// GenerateFromTemplates returns n positions built from the template set, picking each template id
// independently at random (repeats allowed) from a source seeded with seed, so repeated calls with
// the same seed are reproducible. Every
// returned position is checked against criteria; templates that do not pass are logged and kept
// anyway, since a hand-authored shape is a reasonable puzzle even without a unique solution.
func GenerateFromTemplates(ctx context.Context, seed int64, n int, criteria quality.Criteria) []*shogi.Board {
	r := rand.New(rand.NewSource(seed))
	out := make([]*shogi.Board, 0, n)

	for i := 0; i < n; i++ {
		id := r.Intn(NumTemplates)
		b := CreateTemplatePosition(id)
		if !quality.IsQualityPosition(b, criteria) {
			logw.Warningf(ctx, "template %v did not pass quality criteria; keeping it anyway", id)
		}
		out = append(out, b)
	}
	return out
}
