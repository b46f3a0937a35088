// Package quality scores and filters candidate positions for inclusion in a mate-in-1 catalog.
package quality

import (
	"github.com/herohde/shogimate1/pkg/shogi"
	"github.com/herohde/shogimate1/pkg/solver"
)

// Metrics summarizes the difficulty signal for a position.
type Metrics struct {
	TotalPieces      int
	LegalMoves       int
	CheckingMoves    int
	MateMoves        int
	AverageResponses float64
	DifficultyScore  float64
}

// Calculate runs a mate-in-1 search on b and derives a difficulty score from the resulting
// statistics: more legal moves make the mate harder to spot, fewer of them being checks makes it
// less obvious, and more possible replies to consider makes it harder to verify by eye.
func Calculate(b *shogi.Board) Metrics {
	var stats solver.MateSearchStats
	mateMoves := solver.FindMateMoves(b, &stats)

	var difficulty float64
	if stats.TotalLegalMoves > 0 {
		difficulty += float64(stats.TotalLegalMoves) * 0.5
	}
	difficulty += float64(stats.TotalLegalMoves-stats.TotalCheckingMoves) * 0.3
	difficulty += stats.AverageResponses * 1.0

	return Metrics{
		TotalPieces:      countPieces(b),
		LegalMoves:       stats.TotalLegalMoves,
		CheckingMoves:    stats.TotalCheckingMoves,
		MateMoves:        len(mateMoves),
		AverageResponses: stats.AverageResponses,
		DifficultyScore:  difficulty,
	}
}

func countPieces(b *shogi.Board) int {
	return b.PieceCount()
}

// Criteria configures IsQualityPosition and FilterPositions.
type Criteria struct {
	RequireUnique bool
	MinPieces     int
	MaxPieces     int
}

// DefaultCriteria mirrors the distilled generator's defaults: a unique mate-in-1 on a position of
// modest complexity.
var DefaultCriteria = Criteria{
	RequireUnique: true,
	MinPieces:     3,
	MaxPieces:     20,
}

// IsQualityPosition reports whether b meets the given acceptance criteria: within the piece-count
// band, with at least one mate-in-1 and, if required, exactly one.
func IsQualityPosition(b *shogi.Board, c Criteria) bool {
	pieces := countPieces(b)
	if pieces < c.MinPieces || pieces > c.MaxPieces {
		return false
	}

	mateMoves := solver.FindMateMoves(b, nil)
	if len(mateMoves) == 0 {
		return false
	}
	if c.RequireUnique && len(mateMoves) != 1 {
		return false
	}
	return true
}

// FilterPositions returns the subset of positions meeting the given criteria, preserving order.
func FilterPositions(positions []*shogi.Board, c Criteria) []*shogi.Board {
	out := make([]*shogi.Board, 0, len(positions))
	for _, pos := range positions {
		if IsQualityPosition(pos, c) {
			out = append(out, pos)
		}
	}
	return out
}
