package engine

import (
	"testing"

	"github.com/tpeck/chesscore/internal/board"
)

func TestMvvLvaScoreOrdering(t *testing.T) {
	// A queen takes a pawn should score below a pawn takes a queen.
	pawnTakesQueen := mvvLvaScore(board.Queen, board.Pawn)
	queenTakesPawn := mvvLvaScore(board.Pawn, board.Queen)

	if pawnTakesQueen <= queenTakesPawn {
		t.Errorf("pawn-takes-queen (%d) should outscore queen-takes-pawn (%d)", pawnTakesQueen, queenTakesPawn)
	}
}

func TestMvvLvaScoreSaturatesAtZero(t *testing.T) {
	// A king takes a pawn (mover value > victim*10) should never go
	// negative; scores are unsigned.
	if got := mvvLvaScore(board.Pawn, board.King); got != 0 {
		t.Errorf("mvvLvaScore(Pawn, King) = %d, want 0", got)
	}
}

func TestKillerMovesAddAndContains(t *testing.T) {
	k := NewKillerMoves()
	m1 := board.Move{From: board.E2, To: board.E4, MovedKind: board.Pawn}
	m2 := board.Move{From: board.D2, To: board.D4, MovedKind: board.Pawn}

	if k.Contains(0, m1) {
		t.Fatal("fresh killer table should not contain any move")
	}

	k.Add(0, m1)
	if !k.Contains(0, m1) {
		t.Error("killer table should contain m1 after Add")
	}

	k.Add(0, m2)
	if !k.Contains(0, m1) || !k.Contains(0, m2) {
		t.Error("killer table should retain both killers after a second Add")
	}

	m3 := board.Move{From: board.G1, To: board.F3, MovedKind: board.Knight}
	k.Add(0, m3)
	if k.Contains(0, m1) {
		t.Error("oldest killer should have been evicted")
	}
	if !k.Contains(0, m2) || !k.Contains(0, m3) {
		t.Error("killer table should contain the two most recent killers")
	}
}

func TestOrderMovesPutsTTMoveFirst(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	var ml board.MoveList
	b.GeneratePseudoLegalMoves(&ml)

	ttMove, err := board.ParseMove("g1f3", &b)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}

	OrderMoves(&ml, ttMove, NewKillerMoves(), 0)

	first := ml.Get(0)
	if first.From != ttMove.From || first.To != ttMove.To {
		t.Errorf("first ordered move = %v, want the TT move %v", first, ttMove)
	}
}

func TestOrderCapturesDescendingByMvvLva(t *testing.T) {
	b, err := board.FromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	var ml board.MoveList
	b.GenerateCaptures(&ml)
	OrderCaptures(&ml)

	for i := 1; i < ml.Len(); i++ {
		if ml.Get(i).OrderingValue > ml.Get(i-1).OrderingValue {
			t.Errorf("captures not sorted descending at index %d: %d > %d", i, ml.Get(i).OrderingValue, ml.Get(i-1).OrderingValue)
		}
	}
}
