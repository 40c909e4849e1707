package engine

import "github.com/tpeck/chesscore/internal/board"

// Move ordering bonuses, per spec.md's move-ordering formula.
const (
	previousBestBonus = 10000
	killerBonus       = 250
)

// KillerMoves holds, per ply, the two most recent quiet moves that caused a
// beta cutoff there. Checked during ordering so a move that worked well in a
// sibling line gets tried early in this one.
type KillerMoves struct {
	killers [MaxPly][2]board.Move
}

// NewKillerMoves returns an empty killer table sized for one search.
func NewKillerMoves() *KillerMoves {
	return &KillerMoves{}
}

// Contains reports whether m is one of ply's two killers, matched by its
// (from, to) pair.
func (k *KillerMoves) Contains(ply int, m board.Move) bool {
	if ply >= MaxPly {
		return false
	}
	return sameFromTo(k.killers[ply][0], m) || sameFromTo(k.killers[ply][1], m)
}

// sameFromTo reports whether a and b share the (from, to) killer key.
func sameFromTo(a, b board.Move) bool {
	aFrom, aTo := a.FromTo()
	bFrom, bTo := b.FromTo()
	return aFrom == bFrom && aTo == bTo
}

// Add records m as a killer at ply, shifting the previous first killer down
// to second. A move already in the first slot is left alone.
func (k *KillerMoves) Add(ply int, m board.Move) {
	if ply >= MaxPly {
		return
	}
	if sameFromTo(k.killers[ply][0], m) {
		return
	}
	k.killers[ply][1] = k.killers[ply][0]
	k.killers[ply][0] = m
}

// mvvLvaScore is victim_value*10 - mover_value, saturating at zero rather
// than going negative (a king capturing a pawn scores 0, level with an
// unscored quiet move, never below it).
func mvvLvaScore(victim, mover board.PieceKind) uint32 {
	v := uint32(victim.Value()) * 10
	m := uint32(mover.Value())
	if m >= v {
		return 0
	}
	return v - m
}

// OrderMoves scores every move in ml and sorts it descending by
// OrderingValue: the transposition table's best move first, then captures
// by MVV-LVA, then killer-table quiet moves, everything else unscored.
func OrderMoves(ml *board.MoveList, ttMove board.Move, killers *KillerMoves, ply int) {
	hasTTMove := !ttMove.IsNone()
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		var score uint32
		if hasTTMove && m.From == ttMove.From && m.To == ttMove.To {
			score += previousBestBonus
		}
		if !m.IsQuiet() {
			score += mvvLvaScore(m.CapturedKind, m.MovedKind)
		} else if killers.Contains(ply, m) {
			score += killerBonus
		}
		m.OrderingValue = score
		ml.Set(i, m)
	}
	sortByOrderingValue(ml)
}

// OrderCaptures scores and sorts a capture-only list by MVV-LVA, skipping
// the transposition and killer lookups quiescence has no use for.
func OrderCaptures(ml *board.MoveList) {
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		m.OrderingValue = mvvLvaScore(m.CapturedKind, m.MovedKind)
		ml.Set(i, m)
	}
	sortByOrderingValue(ml)
}

// sortByOrderingValue is a selection sort: move lists rarely exceed ~40
// entries, so the O(n^2) cost is negligible next to the subtree it orders.
func sortByOrderingValue(ml *board.MoveList) {
	n := ml.Len()
	for i := 0; i < n-1; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if ml.Get(j).OrderingValue > ml.Get(best).OrderingValue {
				best = j
			}
		}
		if best != i {
			ml.Swap(i, best)
		}
	}
}
