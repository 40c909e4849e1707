package engine

import "github.com/tpeck/chesscore/internal/board"

const (
	// MaxPly bounds the killer table and the depth of any single search;
	// no analysis this engine runs approaches it.
	MaxPly = 128

	// Infinity is the root aspiration window's starting bound. It sits
	// comfortably above KingValue so a king-capture score never clips it.
	Infinity = int16(32000)

	// aspirationWindow is the half-width A of the window placed around
	// the previous iteration's score.
	aspirationWindow = int16(25)

	// Multi-cut parameters: probe the first multiCutMoves ordered moves
	// at a reduced depth, and cut if multiCutThreshold of them beat beta.
	multiCutMoves     = 5
	multiCutThreshold = 2

	// nullMoveReduction is the minimum depth reduction applied to a
	// null-move probe.
	nullMoveReduction = 3

	// lateMoveReductionStart is the move index (0-based) after which late
	// moves are tried at reduced depth before a full search.
	lateMoveReductionStart = 3
)

// KingValue is the score reported when a move captures the opposing king,
// the search's terminal convention in place of check/checkmate detection.
var KingValue = board.PieceValue[board.King]

// Search holds the state one iterative-deepening call threads through its
// recursion: the transposition table and killer-move table are both
// exclusively owned and mutated in place between sibling recursions, while
// the Board and alpha/beta bounds are passed by value and restored on
// return by the call stack itself.
type Search struct {
	tt      *TranspositionTable
	killers *KillerMoves
}

// NewSearch returns a Search ready for one iterative-deepening call against
// tt. A fresh killer table is allocated; reuse a Search only across depths
// of the same iterative-deepening run, never across unrelated positions.
func NewSearch(tt *TranspositionTable) *Search {
	return &Search{tt: tt, killers: NewKillerMoves()}
}

// IterativeDeepeningPly searches root to each ply depth from 0 to maxPly,
// widening an aspiration window around the previous iteration's score on
// fail-high/fail-low, and returns the transposition table it populated. The
// caller reads the entry at root.Hash for the recommended move and score.
func (s *Search) IterativeDeepeningPly(root board.Board, maxPly int8) *TranspositionTable {
	eval := int16(0)

	for depth := int8(0); depth <= maxPly; depth++ {
		alpha, beta := -Infinity, Infinity
		if depth > 0 {
			alpha = eval - aspirationWindow
			beta = eval + aspirationWindow
		}

		for retry := 0; ; retry++ {
			score := s.negamax(root, depth, 0, alpha, beta, false)

			if score <= alpha {
				widen := aspirationWindow << uint(2*retry)
				alpha = clampScore(eval - widen)
				continue
			}
			if score >= beta {
				widen := aspirationWindow << uint(2*retry)
				beta = clampScore(eval + widen)
				continue
			}

			eval = score
			break
		}
	}

	return s.tt
}

func clampScore(v int16) int16 {
	if v < -Infinity {
		return -Infinity
	}
	if v > Infinity {
		return Infinity
	}
	return v
}

// negamax is the search core: evaluate depth/ply subject to the window
// (alpha, beta), from the perspective of board.ToPlay. previousNull reports
// whether the immediately preceding ply was itself a null move, so
// null-move pruning never fires twice in a row.
func (s *Search) negamax(b board.Board, depth int8, ply int, alpha, beta int16, previousNull bool) int16 {
	if depth <= 0 {
		return s.quiesce(b, alpha, beta)
	}

	var ttMove board.Move
	if entry, found := s.tt.Probe(b.Hash); found {
		ttMove = entry.BestMove
		if entry.Depth > depth && entry.Node.Kind == PvNode {
			return entry.Node.Score
		}
	}

	if !previousNull && depth > 2 && !b.InEndgame() {
		if evaluateForMover(&b) >= beta {
			child := b.MakeNullMove()
			value := -s.negamax(child, depth-nullMoveReduction, ply+1, -beta, -beta+1, true)
			if value >= beta {
				return value
			}
		}
	}

	var ml board.MoveList
	b.GeneratePseudoLegalMoves(&ml)
	OrderMoves(&ml, ttMove, s.killers, ply)

	if depth >= 3 {
		limit := multiCutMoves
		if ml.Len() < limit {
			limit = ml.Len()
		}
		cuts := 0
		for i := 0; i < limit; i++ {
			m := ml.Get(i)
			if m.CapturedKind == board.King {
				continue
			}
			child, err := b.MakeMove(m)
			if err != nil {
				continue
			}
			value := -s.negamax(child, depth-nullMoveReduction, ply+1, -beta, -beta+1, false)
			if value >= beta {
				cuts++
				if cuts >= multiCutThreshold {
					return beta
				}
			}
		}
	}

	bestMove := board.NoMove
	pvSearch := true

	for index := 0; index < ml.Len(); index++ {
		m := ml.Get(index)

		if m.CapturedKind == board.King {
			if ply == 0 {
				s.tt.Store(b.Hash, depth, Node{PvNode, KingValue}, m)
			}
			return KingValue
		}

		child, err := b.MakeMove(m)
		if err != nil {
			continue
		}

		var score int16
		switch {
		case index > lateMoveReductionStart && depth >= 3 && bestMove.IsNone():
			reduced := -s.negamax(child, depth-nullMoveReduction, ply+1, -beta, -alpha, false)
			if reduced > alpha {
				score = -s.negamax(child, depth-1, ply+1, -beta, -alpha, false)
			} else {
				score = reduced
			}
		case pvSearch:
			score = -s.negamax(child, depth-1, ply+1, -beta, -alpha, false)
		default:
			scout := -s.negamax(child, depth-1, ply+1, -alpha-1, -alpha, false)
			if scout > alpha {
				score = -s.negamax(child, depth-1, ply+1, -beta, -alpha, false)
			} else {
				score = scout
			}
		}

		if score >= beta {
			if m.IsQuiet() {
				s.killers.Add(ply, m)
			}
			s.tt.Store(b.Hash, depth, Node{CutNode, beta}, m)
			return beta
		}

		if score > alpha {
			alpha = score
			bestMove = m
			pvSearch = false
		}
	}

	if !bestMove.IsNone() {
		s.tt.Store(b.Hash, depth, Node{PvNode, alpha}, bestMove)
	}

	return alpha
}
