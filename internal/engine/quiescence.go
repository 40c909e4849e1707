package engine

import "github.com/tpeck/chesscore/internal/board"

// deltaMargin is the delta-pruning margin, 2 pawns.
const deltaMargin = 2 * 100

// evaluateForMover returns StaticEvaluation from the perspective of the
// side to move: StaticEvaluation itself stays White-relative and
// side-to-move-agnostic, so this is the one place that negates it for
// Black.
func evaluateForMover(b *board.Board) int16 {
	v := StaticEvaluation(b)
	if b.ToPlay == board.Black {
		return -v
	}
	return v
}

// quiesce extends the search at a leaf with a capture-only alpha-beta pass,
// damping the horizon effect: a position isn't scored as quiet until no
// capture can still improve it.
func (s *Search) quiesce(b board.Board, alpha, beta int16) int16 {
	standPat := evaluateForMover(&b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var ml board.MoveList
	b.GenerateCaptures(&ml)
	OrderCaptures(&ml)

	inEndgame := b.InEndgame()

	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)

		if m.CapturedKind == board.King {
			return KingValue
		}

		if !inEndgame {
			victim := m.CapturedKind.Value()
			if m.IsPromotion {
				victim += board.Queen.Value() - board.Pawn.Value()
			}
			if standPat+deltaMargin+victim <= alpha {
				continue
			}
		}

		child, err := b.MakeMove(m)
		if err != nil {
			continue
		}

		score := -s.quiesce(child, -beta, -alpha)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
