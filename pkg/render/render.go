// Package render draws Shogi positions as SVG board diagrams.
package render

import (
	"io"

	"github.com/ajstarks/svgo"
	"github.com/herohde/shogimate1/pkg/shogi"
)

const (
	cellSize  = 60
	boardSize = shogi.NumFiles * cellSize
	margin    = 40
	handRows  = 2 * cellSize
)

// Board writes an SVG diagram of b to w: a 9x9 grid with Japanese glyphs for on-board pieces,
// White's pieces rotated 180 degrees to face their own side, White's hand listed above the board
// and Black's hand below it.
func Board(w io.Writer, b *shogi.Board) {
	canvas := svg.New(w)
	width := boardSize + 2*margin
	height := boardSize + 2*margin + 2*handRows
	canvas.Start(width, height)
	canvas.Rect(margin, margin+handRows, boardSize, boardSize, "fill:#f0d9b5;stroke:black;stroke-width:2")

	for i := 0; i <= shogi.NumFiles; i++ {
		x := margin + i*cellSize
		canvas.Line(x, margin+handRows, x, margin+handRows+boardSize, "stroke:black;stroke-width:1")
	}
	for i := 0; i <= shogi.NumRanks; i++ {
		y := margin + handRows + i*cellSize
		canvas.Line(margin, y, margin+boardSize, y, "stroke:black;stroke-width:1")
	}

	for file := 1; file <= shogi.NumFiles; file++ {
		for rank := 1; rank <= shogi.NumRanks; rank++ {
			p := b.Piece(shogi.NewSquare(file, rank))
			if p.IsEmpty() {
				continue
			}
			drawPiece(canvas, p, file, rank)
		}
	}

	drawHand(canvas, b, shogi.White, margin, "Gote")
	drawHand(canvas, b, shogi.Black, margin+handRows+boardSize, "Sente")

	canvas.End()
}

func drawPiece(canvas *svg.SVG, p shogi.Piece, file, rank int) {
	cx := margin + (shogi.NumFiles-file)*cellSize + cellSize/2
	cy := margin + handRows + (rank-1)*cellSize + cellSize/2

	transform := ""
	if p.Side == shogi.White {
		transform = svg.Rotate(180, cx, cy)
	}

	canvas.Gtransform(transform)
	canvas.Text(cx, cy+cellSize/6, p.Kind.GlyphName(), "text-anchor:middle;font-size:28px")
	canvas.Gend()
}

func drawHand(canvas *svg.SVG, b *shogi.Board, side shogi.Side, y int, label string) {
	canvas.Text(margin, y+20, label, "font-size:16px;font-weight:bold")

	hand := b.Hand(side)
	x := margin + 80
	for _, kind := range shogi.HandKinds() {
		n := hand.Count(kind)
		if n == 0 {
			continue
		}
		canvas.Text(x, y+20, kind.GlyphName(), "font-size:20px")
		if n > 1 {
			canvas.Text(x+24, y+20, itoa(n), "font-size:14px")
		}
		x += 56
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
