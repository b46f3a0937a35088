// Package solver implements one-move mate detection and scoring for Shogi positions.
package solver

import (
	"github.com/herohde/shogimate1/pkg/shogi"
)

// MateSearchStats carries aggregate statistics from a FindMateMoves call, used both to report
// search cost and to feed the difficulty estimator.
type MateSearchStats struct {
	TotalLegalMoves    int
	TotalCheckingMoves int
	MateMoves          int
	AverageResponses   float64
}

// IsMateIn1 reports whether playing move on board is checkmate: it must give check, and the
// opponent must have no legal reply.
func IsMateIn1(b *shogi.Board, move shogi.Move) bool {
	side := b.Turn()
	opponent := side.Opponent()

	rec, ok := b.ApplyMove(move)
	if !ok {
		return false
	}
	defer b.UndoMove(move, rec)

	if !shogi.InCheck(b, opponent) {
		return false
	}
	return len(shogi.LegalMoves(b, opponent)) == 0
}

// FindMateMoves returns every mate-in-1 move available to the side to move, optionally filling
// stats with the legal-move, checking-move and average-response counts behind the search.
func FindMateMoves(b *shogi.Board, stats *MateSearchStats) []shogi.Move {
	side := b.Turn()
	opponent := side.Opponent()

	allMoves := shogi.LegalMoves(b, side)

	var checkMoves []shogi.Move
	var responseCounts []int
	responses := make(map[shogi.Move]int, len(allMoves))

	for _, move := range allMoves {
		rec, ok := b.ApplyMove(move)
		if !ok {
			continue
		}
		inCheck := shogi.InCheck(b, opponent)
		var n int
		if inCheck {
			n = len(shogi.LegalMoves(b, opponent))
		}
		b.UndoMove(move, rec)

		if !inCheck {
			continue
		}
		checkMoves = append(checkMoves, move)
		responseCounts = append(responseCounts, n)
		responses[move] = n
	}

	// Drain checking moves in capture-priority order, so a mate found via a capture (the more
	// valuable the captured piece, the earlier) is reported before quiet moves and drops.
	var mateMoves []shogi.Move
	ml := shogi.NewMoveList(checkMoves, shogi.CapturePriority(b))
	for {
		move, ok := ml.Next()
		if !ok {
			break
		}
		if responses[move] == 0 {
			mateMoves = append(mateMoves, move)
		}
	}

	if stats != nil {
		stats.TotalLegalMoves = len(allMoves)
		stats.TotalCheckingMoves = len(checkMoves)
		stats.MateMoves = len(mateMoves)
		if len(checkMoves) > 0 {
			sum := 0
			for _, r := range responseCounts {
				sum += r
			}
			stats.AverageResponses = float64(sum) / float64(len(checkMoves))
		} else {
			stats.AverageResponses = 0
		}
	}

	return mateMoves
}

// HasUniqueMate reports whether board has exactly one mate-in-1 move.
func HasUniqueMate(b *shogi.Board) bool {
	return len(FindMateMoves(b, nil)) == 1
}

// GetUniqueMate returns the unique mate-in-1 move and true, or the zero move and false if there
// is not exactly one.
func GetUniqueMate(b *shogi.Board) (shogi.Move, bool) {
	moves := FindMateMoves(b, nil)
	if len(moves) == 1 {
		return moves[0], true
	}
	return shogi.Move{}, false
}

// VerifyResult is the detailed report returned by Verify.
type VerifyResult struct {
	IsMate    bool
	IsUnique  bool
	MateCount int
	Moves     []shogi.Move
	Stats     MateSearchStats
}

// Verify runs a full mate-in-1 search on board and reports the result.
func Verify(b *shogi.Board) VerifyResult {
	var stats MateSearchStats
	moves := FindMateMoves(b, &stats)
	return VerifyResult{
		IsMate:    len(moves) > 0,
		IsUnique:  len(moves) == 1,
		MateCount: len(moves),
		Moves:     moves,
		Stats:     stats,
	}
}
