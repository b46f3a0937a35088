// Package shogi contains the Shogi board, piece and move representation along with the
// rules-aware move generator and the associated mate-in-1 search kernel.
package shogi

// Kind represents a Shogi piece kind, without a side. 4 bits.
type Kind uint8

const (
	NoKind Kind = iota
	King
	Rook
	Bishop
	Gold
	Silver
	Knight
	Lance
	Pawn
	PromotedRook
	PromotedBishop
	PromotedSilver
	PromotedKnight
	PromotedLance
	PromotedPawn

	NumKinds
)

// promotionOf maps an unpromoted kind to its promoted form. Kinds absent from
// this map (King, Gold, and the promoted kinds themselves) never promote.
var promotionOf = map[Kind]Kind{
	Rook:   PromotedRook,
	Bishop: PromotedBishop,
	Silver: PromotedSilver,
	Knight: PromotedKnight,
	Lance:  PromotedLance,
	Pawn:   PromotedPawn,
}

var unpromotionOf = map[Kind]Kind{
	PromotedRook:   Rook,
	PromotedBishop: Bishop,
	PromotedSilver: Silver,
	PromotedKnight: Knight,
	PromotedLance:  Lance,
	PromotedPawn:   Pawn,
}

// goldLikeKinds move exactly like a Gold General.
var goldLikeKinds = map[Kind]bool{
	Gold:           true,
	PromotedSilver: true,
	PromotedKnight: true,
	PromotedLance:  true,
	PromotedPawn:   true,
}

func (k Kind) IsValid() bool {
	return King <= k && k < NumKinds
}

// CanPromote returns true iff the kind has a promoted form.
func (k Kind) CanPromote() bool {
	_, ok := promotionOf[k]
	return ok
}

// IsPromoted returns true iff the kind is itself a promoted form.
func (k Kind) IsPromoted() bool {
	_, ok := unpromotionOf[k]
	return ok
}

// Promote returns the promoted form of the kind, or k unchanged if it cannot promote.
func (k Kind) Promote() Kind {
	if p, ok := promotionOf[k]; ok {
		return p
	}
	return k
}

// Unpromote returns the unpromoted origin of the kind, or k unchanged if it is not promoted.
func (k Kind) Unpromote() Kind {
	if u, ok := unpromotionOf[k]; ok {
		return u
	}
	return k
}

// IsDropEligible returns true iff the kind may be held in hand and dropped. Only King is excluded
// among the on-board kinds a hand could otherwise hold; promoted kinds are never held in hand
// directly (they revert to their unpromoted form on capture), so callers should pass Unpromote()'d
// kinds here.
func (k Kind) IsDropEligible() bool {
	return k != NoKind && k != King && !k.IsPromoted()
}

func (k Kind) String() string {
	switch k {
	case NoKind:
		return "-"
	case King:
		return "K"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Gold:
		return "G"
	case Silver:
		return "S"
	case Knight:
		return "N"
	case Lance:
		return "L"
	case Pawn:
		return "P"
	case PromotedRook:
		return "+R"
	case PromotedBishop:
		return "+B"
	case PromotedSilver:
		return "+S"
	case PromotedKnight:
		return "+N"
	case PromotedLance:
		return "+L"
	case PromotedPawn:
		return "+P"
	default:
		return "?"
	}
}

// KindFromLetter parses a single unpromoted-kind letter (K, R, B, G, S, N, L, P -- case
// insensitive) into a Kind. Ok is false for any other letter.
func KindFromLetter(r rune) (Kind, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	switch r {
	case 'K':
		return King, true
	case 'R':
		return Rook, true
	case 'B':
		return Bishop, true
	case 'G':
		return Gold, true
	case 'S':
		return Silver, true
	case 'N':
		return Knight, true
	case 'L':
		return Lance, true
	case 'P':
		return Pawn, true
	default:
		return NoKind, false
	}
}

// GlyphName renders a kind using the Japanese glyphs used by the board diagram and the SVG
// renderer: one character per kind, two for promoted silver, knight and lance.
func (k Kind) GlyphName() string {
	return k.jpName()
}

// jpName renders a kind using the Japanese glyphs used by the board diagram and the SVG
// renderer: one character per kind, two for promoted silver, knight and lance.
func (k Kind) jpName() string {
	switch k {
	case King:
		return "玉"
	case Rook:
		return "飛"
	case Bishop:
		return "角"
	case Gold:
		return "金"
	case Silver:
		return "銀"
	case Knight:
		return "桂"
	case Lance:
		return "香"
	case Pawn:
		return "歩"
	case PromotedRook:
		return "龍"
	case PromotedBishop:
		return "馬"
	case PromotedSilver:
		return "成銀"
	case PromotedKnight:
		return "成桂"
	case PromotedLance:
		return "成香"
	case PromotedPawn:
		return "と"
	default:
		return "・"
	}
}

// Piece is a signed piece: a Kind paired with a Side. The zero value is Empty.
type Piece struct {
	Kind Kind
	Side Side
}

// Empty is the absence of a piece on a square.
var Empty = Piece{}

func NewPiece(k Kind, s Side) Piece {
	return Piece{Kind: k, Side: s}
}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

func (p Piece) CanPromote() bool {
	return p.Kind.CanPromote()
}

func (p Piece) Promote() Piece {
	return Piece{Kind: p.Kind.Promote(), Side: p.Side}
}

func (p Piece) Unpromote() Piece {
	return Piece{Kind: p.Kind.Unpromote(), Side: p.Side}
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	if p.Side == White {
		return toLower(p.Kind.String())
	}
	return p.Kind.String()
}

func toLower(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = r - 'A' + 'a'
		}
	}
	return string(out)
}

// delta is a (file, rank) offset added to a square's file and rank numbers. Positive df moves
// toward file 9; this mirrors the distilled source's (df, dr) convention where df>0 is a leftward
// step and dr>0 is a downward step, from Black's perspective.
type delta struct {
	df, dr int
}

var (
	kingSteps = []delta{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	goldSteps = []delta{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{0, 1},
	}
	silverSteps = []delta{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 1}, {1, 1},
	}
	knightSteps = []delta{
		{-1, -2}, {1, -2},
	}
	pawnStep = []delta{
		{0, -1},
	}

	rookDirs = []delta{
		{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	}
	bishopDirs = []delta{
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	}
	lanceDirs = []delta{
		{0, -1},
	}
)

// StepsOf returns the one-step offsets the piece may move to. For sliding pieces (Rook, Bishop,
// Lance, +Rook, +Bishop) it returns only their non-sliding extra steps: empty for plain
// Rook/Bishop/Lance, the four diagonal steps for +Rook, the four orthogonal steps for +Bishop.
// Offsets are already oriented for the piece's side (negated for White).
func StepsOf(p Piece) []delta {
	var steps []delta
	switch {
	case p.Kind == King:
		steps = kingSteps
	case goldLikeKinds[p.Kind]:
		steps = goldSteps
	case p.Kind == Silver:
		steps = silverSteps
	case p.Kind == Knight:
		steps = knightSteps
	case p.Kind == Pawn:
		steps = pawnStep
	case p.Kind == PromotedRook:
		steps = bishopDirs
	case p.Kind == PromotedBishop:
		steps = rookDirs
	default:
		return nil
	}
	if p.Side == Black {
		return steps
	}
	return flip(steps)
}

// SlideDirsOf returns the directions along which the piece slides indefinitely until blocked.
func SlideDirsOf(p Piece) []delta {
	var dirs []delta
	switch p.Kind {
	case Rook, PromotedRook:
		dirs = rookDirs
	case Bishop, PromotedBishop:
		dirs = bishopDirs
	case Lance:
		dirs = lanceDirs
	default:
		return nil
	}
	if p.Side == Black {
		return dirs
	}
	return flip(dirs)
}

// IsSliding returns true iff the piece has a non-empty slide direction set.
func IsSliding(p Piece) bool {
	return len(SlideDirsOf(p)) > 0
}

func flip(in []delta) []delta {
	out := make([]delta, len(in))
	for i, d := range in {
		out[i] = delta{df: -d.df, dr: -d.dr}
	}
	return out
}
