package shogi

import (
	"container/heap"
	"fmt"
	"sort"
)

// MovePriority represents a move ordering priority: larger sorts first.
type MovePriority int16

// MovePriorityFn assigns a priority to a move.
type MovePriorityFn func(move Move) MovePriority

// SortByPriority sorts moves by priority, preserving relative order for equal priorities. Used to
// order a solver's reported mate moves for display, highest-priority first.
func SortByPriority(moves []Move, fn MovePriorityFn) {
	sort.SliceStable(moves, func(i, j int) bool {
		return fn(moves[i]) > fn(moves[j])
	})
}

// MoveList is a move priority queue used by the solver to drain a set of checking moves in
// priority order: captures of valuable pieces before quiet drops.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list ordered by fn, highest priority first.
func NewMoveList(moves []Move, fn MovePriorityFn) *MoveList {
	h := moveHeap(make([]elm, len(moves)))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next pops and returns the highest-priority remaining move.
func (ml *MoveList) Next() (Move, bool) {
	if ml.Size() == 0 {
		return Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

// CapturePriority is a MovePriorityFn that favors capturing moves over quiet ones, and among
// captures favors capturing the more valuable piece. Drops rank as quiet moves since they never
// capture.
func CapturePriority(b *Board) MovePriorityFn {
	return func(m Move) MovePriority {
		if m.IsDrop() {
			return 0
		}
		captured := b.Piece(m.To)
		if captured.IsEmpty() {
			return 0
		}
		return MovePriority(pieceValue(captured.Kind)) + 1
	}
}

func pieceValue(k Kind) int {
	switch k.Unpromote() {
	case Rook:
		return 5
	case Bishop:
		return 4
	case Gold:
		return 3
	case Silver:
		return 2
	case Knight, Lance:
		return 1
	case Pawn:
		return 0
	default:
		return 0
	}
}

type elm struct {
	m   Move
	val MovePriority
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].val > h[j].val
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	panic("fixed size heap")
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}
