package engine

import (
	"log"

	"github.com/tpeck/chesscore/internal/board"
)

// Analyzer is the library-facing search entry point. It owns a
// transposition table across calls, so repeated Analyze calls against
// related positions (successive moves of one game) benefit from prior
// work; construct a fresh Analyzer to search an unrelated position from a
// clean table.
type Analyzer struct {
	tt *TranspositionTable
}

// NewAnalyzer returns an Analyzer backed by a transposition table sized to
// roughly ttSizeMB megabytes.
func NewAnalyzer(ttSizeMB int) *Analyzer {
	return &Analyzer{tt: NewTranspositionTable(ttSizeMB)}
}

// Analyze runs iterative deepening on root to depthPly half-moves and
// returns the side to move's recommended move and its centipawn score from
// the side to move's perspective. It returns (board.NoMove, 0) if the
// search left no entry for root in the table, as with depthPly 0: that
// runs only the quiescence search, which stores nothing.
func (a *Analyzer) Analyze(root board.Board, depthPly int8) (board.Move, int16) {
	search := NewSearch(a.tt)
	search.IterativeDeepeningPly(root, depthPly)

	entry, found := a.tt.Probe(root.Hash)
	if !found {
		log.Printf("[search] no root entry for hash %x after depth %d", root.Hash, depthPly)
		return board.NoMove, 0
	}

	return entry.BestMove, entry.Node.Score
}

// PrincipalVariation walks best moves out of the transposition table
// starting at root, the way the table itself records them: each position's
// entry names the move that produced its stored score, so following that
// chain reconstructs the line the search actually expects to be played.
// It stops at maxLen plies, a transposition miss, or a repeated position
// (which would otherwise loop forever through a transposition cycle).
func (a *Analyzer) PrincipalVariation(root board.Board, maxLen int) []board.Move {
	seen := make(map[uint64]bool, maxLen)
	line := make([]board.Move, 0, maxLen)

	current := root
	for i := 0; i < maxLen; i++ {
		if seen[current.Hash] {
			break
		}
		seen[current.Hash] = true

		entry, found := a.tt.Probe(current.Hash)
		if !found || entry.BestMove.IsNone() {
			break
		}

		line = append(line, entry.BestMove)

		next, err := current.MakeMove(entry.BestMove)
		if err != nil {
			break
		}
		current = next
	}

	return line
}
