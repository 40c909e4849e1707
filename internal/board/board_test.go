package board

import "testing"

// TestSquareRoundTrip checks NewSquare/X/Y and UCI round-tripping for every
// square on the board.
func TestSquareRoundTrip(t *testing.T) {
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			sq := NewSquare(x, y)
			if sq.X() != x || sq.Y() != y {
				t.Fatalf("NewSquare(%d, %d): got X=%d Y=%d", x, y, sq.X(), sq.Y())
			}

			got, err := FromUCI(sq.ToUCI())
			if err != nil {
				t.Fatalf("FromUCI(%q): %v", sq.ToUCI(), err)
			}
			if got != sq {
				t.Errorf("FromUCI(%q) = %v, want %v", sq.ToUCI(), got, sq)
			}
		}
	}
}

// TestStartPositionInvariants checks the disjointness and occupancy
// invariants on the standard starting position.
func TestStartPositionInvariants(t *testing.T) {
	b, err := FromFEN(StartFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	checkInvariants(t, &b)

	if b.Material != 0 {
		t.Errorf("starting material = %d, want 0", b.Material)
	}
	if b.ToPlay != White {
		t.Errorf("starting side to move = %v, want White", b.ToPlay)
	}
}

// TestInvariantsAcrossMoves plays a short sequence of moves and checks the
// disjointness, occupancy and hash invariants hold after each one.
func TestInvariantsAcrossMoves(t *testing.T) {
	b, err := FromFEN(StartFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	uciMoves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4"}
	for _, uci := range uciMoves {
		m, err := ParseMove(uci, &b)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", uci, err)
		}
		b, err = b.MakeMove(m)
		if err != nil {
			t.Fatalf("MakeMove(%q): %v", uci, err)
		}
		checkInvariants(t, &b)
	}
}

// TestMakeMovePromotionUpdatesMaterial checks that promoting a pawn adds the
// queen-minus-pawn value gain to both Material (signed by the mover's team)
// and AbsoluteMaterial, mirroring the bookkeeping FromFEN's parsePlacement
// does when a queen is placed directly.
func TestMakeMovePromotionUpdatesMaterial(t *testing.T) {
	b, err := FromFEN("8/P7/8/4k3/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	wantGain := Queen.Value() - Pawn.Value()
	wantMaterial := b.Material + wantGain
	wantAbsolute := b.AbsoluteMaterial + wantGain

	m, err := ParseMove("a7a8", &b)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if !m.IsPromotion {
		t.Fatal("a7a8 from this position should be tagged IsPromotion")
	}

	next, err := b.MakeMove(m)
	if err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	checkInvariants(t, &next)

	if next.Material != wantMaterial {
		t.Errorf("Material after promotion = %d, want %d", next.Material, wantMaterial)
	}
	if next.AbsoluteMaterial != wantAbsolute {
		t.Errorf("AbsoluteMaterial after promotion = %d, want %d", next.AbsoluteMaterial, wantAbsolute)
	}
	if next.PieceAt(A8).Kind != Queen {
		t.Errorf("promoted piece kind = %v, want Queen", next.PieceAt(A8).Kind)
	}

	// Black promoting should subtract from Material (White-relative), not add.
	blackBoard, err := FromFEN("4k3/8/8/8/8/8/p7/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	blackWantMaterial := blackBoard.Material - wantGain

	bm, err := ParseMove("a2a1", &blackBoard)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	blackNext, err := blackBoard.MakeMove(bm)
	if err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	checkInvariants(t, &blackNext)

	if blackNext.Material != blackWantMaterial {
		t.Errorf("Material after Black promotion = %d, want %d", blackNext.Material, blackWantMaterial)
	}
}

// checkInvariants asserts the disjointness, occupancy and hash invariants
// spec.md lists for Board.
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()

	for team := White; team <= Black; team++ {
		union := EmptyBB
		for k1 := Pawn; k1 <= King; k1++ {
			for k2 := k1 + 1; k2 <= King; k2++ {
				if b.Pieces[team][k1]&b.Pieces[team][k2] != 0 {
					t.Errorf("team %v kinds %v/%v overlap", team, k1, k2)
				}
			}
			union |= b.Pieces[team][k1]
		}
		if union != b.AllPieces[team] {
			t.Errorf("team %v: union of kind bitboards %v != AllPieces %v", team, union, b.AllPieces[team])
		}
	}

	if b.AllPieces[White]&b.AllPieces[Black] != 0 {
		t.Errorf("White and Black occupancy overlap")
	}

	if got, want := b.Hash, b.ComputeHash(); got != want {
		t.Errorf("incremental hash %x != recomputed hash %x", got, want)
	}
}

// TestFENRoundTrip checks that ToFEN produces a FEN that FromFEN parses back
// into an equivalent board for a handful of positions.
func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"r1b5/ppk3pp/2p5/8/4Nr2/4Rn2/PPP4P/1K3B1R b - - 7 26",
	}

	for _, fen := range fens {
		b, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q): %v", fen, err)
		}

		roundTripped, err := FromFEN(b.ToFEN())
		if err != nil {
			t.Fatalf("FromFEN(ToFEN(%q)) = %q: %v", fen, b.ToFEN(), err)
		}

		if roundTripped.Hash != b.Hash {
			t.Errorf("%q: round trip through FEN changed the hash", fen)
		}
		if roundTripped.ToPlay != b.ToPlay {
			t.Errorf("%q: round trip through FEN changed side to move", fen)
		}
	}
}

// TestMakeMoveRejectsEmptySource checks that MakeMove reports an error when
// asked to move a piece from a square the side to move doesn't occupy.
func TestMakeMoveRejectsEmptySource(t *testing.T) {
	b, err := FromFEN(StartFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	_, err = b.MakeMove(Move{From: E4, To: E5, MovedKind: Pawn})
	if err == nil {
		t.Error("MakeMove from an empty square should have returned an error")
	}
}

// TestMakeNullMoveOnlyFlipsSideToMove checks that a null move leaves every
// bitboard untouched and only flips the side to move and its Zobrist key.
func TestMakeNullMoveOnlyFlipsSideToMove(t *testing.T) {
	b, err := FromFEN(StartFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	next := b.MakeNullMove()

	if next.ToPlay == b.ToPlay {
		t.Error("MakeNullMove did not flip side to move")
	}
	if next.Pieces != b.Pieces {
		t.Error("MakeNullMove changed piece bitboards")
	}
	if next.Hash == b.Hash {
		t.Error("MakeNullMove did not change the hash")
	}
	if next.Hash != b.Hash^ZobristSideToMove() {
		t.Error("MakeNullMove's hash delta is not exactly the side-to-move key")
	}
}
