// Package sfen reads and writes Shogi positions in SFEN (Shogi Forsyth-Edwards Notation).
package sfen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/herohde/shogimate1/pkg/shogi"
)

// Initial is the SFEN for the standard Shogi starting position.
const Initial = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// handOrder lists the seven drop-eligible kinds in SFEN hand-field order, most valuable first.
var handOrder = []shogi.Kind{shogi.Rook, shogi.Bishop, shogi.Gold, shogi.Silver, shogi.Knight, shogi.Lance, shogi.Pawn}

// Decode parses a four-field SFEN string into a Board and the move number.
func Decode(s string) (*shogi.Board, int, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 4 {
		return nil, 0, fmt.Errorf("sfen: expected 4 fields, got %d in %q", len(parts), s)
	}

	b := shogi.NewBoard()
	if err := decodeBoard(b, parts[0]); err != nil {
		return nil, 0, fmt.Errorf("sfen: %w", err)
	}

	turn, err := decodeTurn(parts[1])
	if err != nil {
		return nil, 0, fmt.Errorf("sfen: %w", err)
	}
	b.SetTurn(turn)

	if err := decodeHands(b, parts[2]); err != nil {
		return nil, 0, fmt.Errorf("sfen: %w", err)
	}

	moveNum, err := strconv.Atoi(parts[3])
	if err != nil || moveNum < 0 {
		return nil, 0, fmt.Errorf("sfen: invalid move number %q", parts[3])
	}

	return b, moveNum, nil
}

func decodeBoard(b *shogi.Board, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != shogi.NumRanks {
		return fmt.Errorf("expected %d ranks, got %d in %q", shogi.NumRanks, len(ranks), field)
	}

	for i, rankStr := range ranks {
		rank := i + 1
		file := shogi.NumFiles

		runes := []rune(rankStr)
		for j := 0; j < len(runes); j++ {
			r := runes[j]
			switch {
			case r >= '1' && r <= '9':
				file -= int(r - '0')
				if file < 0 {
					return fmt.Errorf("rank %q exceeds %d files", rankStr, shogi.NumFiles)
				}
			case r == '+':
				j++
				if j >= len(runes) {
					return fmt.Errorf("dangling promotion marker in rank %q", rankStr)
				}
				kind, side, err := decodePieceLetter(runes[j])
				if err != nil {
					return err
				}
				if file < 1 {
					return fmt.Errorf("rank %q exceeds %d files", rankStr, shogi.NumFiles)
				}
				b.SetPiece(shogi.NewSquare(file, rank), shogi.NewPiece(kind.Promote(), side))
				file--
			default:
				kind, side, err := decodePieceLetter(r)
				if err != nil {
					return err
				}
				if file < 1 {
					return fmt.Errorf("rank %q exceeds %d files", rankStr, shogi.NumFiles)
				}
				b.SetPiece(shogi.NewSquare(file, rank), shogi.NewPiece(kind, side))
				file--
			}
		}
		if file != 0 {
			return fmt.Errorf("rank %q does not sum to %d files", rankStr, shogi.NumFiles)
		}
	}
	return nil
}

func decodePieceLetter(r rune) (shogi.Kind, shogi.Side, error) {
	kind, ok := shogi.KindFromLetter(r)
	if !ok {
		return 0, 0, fmt.Errorf("invalid piece letter %q", r)
	}
	side := shogi.White
	if r >= 'A' && r <= 'Z' {
		side = shogi.Black
	}
	return kind, side, nil
}

func decodeTurn(field string) (shogi.Side, error) {
	switch field {
	case "b":
		return shogi.Black, nil
	case "w":
		return shogi.White, nil
	default:
		return 0, fmt.Errorf("invalid turn %q", field)
	}
}

func decodeHands(b *shogi.Board, field string) error {
	if field == "-" {
		return nil
	}

	runes := []rune(field)
	for i := 0; i < len(runes); {
		count := 1
		if runes[i] >= '1' && runes[i] <= '9' {
			start := i
			for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
				i++
			}
			n, err := strconv.Atoi(string(runes[start:i]))
			if err != nil {
				return fmt.Errorf("invalid hand count in %q", field)
			}
			count = n
		}
		if i >= len(runes) {
			return fmt.Errorf("dangling hand count in %q", field)
		}
		kind, side, err := decodePieceLetter(runes[i])
		if err != nil {
			return err
		}
		if !kind.IsDropEligible() {
			return fmt.Errorf("kind %v cannot be held in hand, in %q", kind, field)
		}
		b.AddToHand(side, kind, count)
		i++
	}
	return nil
}

// Encode renders a Board and move number as a four-field SFEN string.
func Encode(b *shogi.Board, moveNum int) string {
	var sb strings.Builder

	for rank := 1; rank <= shogi.NumRanks; rank++ {
		blanks := 0
		for file := shogi.NumFiles; file >= 1; file-- {
			p := b.Piece(shogi.NewSquare(file, rank))
			if p.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(encodePieceLetter(p))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if rank < shogi.NumRanks {
			sb.WriteString("/")
		}
	}

	sb.WriteString(" ")
	sb.WriteString(b.Turn().String())
	sb.WriteString(" ")
	sb.WriteString(encodeHands(b))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(moveNum))

	return sb.String()
}

func encodePieceLetter(p shogi.Piece) string {
	letter := p.Kind.Unpromote().String()
	if p.Side == shogi.White {
		letter = strings.ToLower(letter)
	}
	if p.Kind.IsPromoted() {
		return "+" + letter
	}
	return letter
}

func encodeHands(b *shogi.Board) string {
	var sb strings.Builder
	for _, side := range []shogi.Side{shogi.Black, shogi.White} {
		hand := b.Hand(side)
		for _, kind := range handOrder {
			n := hand.Count(kind)
			if n == 0 {
				continue
			}
			if n > 1 {
				sb.WriteString(strconv.Itoa(n))
			}
			letter := kind.String()
			if side == shogi.White {
				letter = strings.ToLower(letter)
			}
			sb.WriteString(letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
