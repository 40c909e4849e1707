package engine

import (
	"testing"

	"github.com/tpeck/chesscore/internal/board"
)

func TestAnalyzerReturnsAMove(t *testing.T) {
	root, err := board.FromFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	a := NewAnalyzer(4)
	move, _ := a.Analyze(root, 3)

	if move.IsNone() {
		t.Error("Analyze returned no move for the starting position")
	}
}

func TestAnalyzerPrincipalVariationTerminates(t *testing.T) {
	root, err := board.FromFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	a := NewAnalyzer(4)
	a.Analyze(root, 3)

	line := a.PrincipalVariation(root, 64)
	if len(line) == 0 {
		t.Error("expected a non-empty principal variation from the searched position")
	}
	if len(line) > 64 {
		t.Errorf("principal variation exceeded maxLen: got %d moves", len(line))
	}
}
