package board

import "fmt"

// endgameMaterialThreshold is the non-king material, in centipawns, at or
// below which a position is treated as an endgame for evaluation phasing
// and null-move pruning: 24 pawns' worth.
const endgameMaterialThreshold = 24 * 100

// Board is a value-typed chess position. Unlike a mutable position with an
// undo stack, every move produces a fresh Board rather than mutating one in
// place — copying six bitboards is cheap, and it lets the search hold many
// positions (a principal variation, a killer line) as plain values with no
// aliasing to reason about.
//
// The zero value is an empty board with White to move. It is populated
// square by square through addPiece (see fen.go's FromFEN), and from then
// on only ever produced by MakeMove or MakeNullMove.
type Board struct {
	// Pieces holds one bitboard per (team, kind).
	Pieces [2][6]Bitboard

	// AllPieces is the union of a team's piece bitboards, cached to avoid
	// recomputing it on every PieceAt / move-generation call.
	AllPieces [2]Bitboard

	ToPlay Team

	// Turn is the fullmove counter carried over from the loaded FEN. It
	// is not incremented by MakeMove; it phases evaluation for the
	// position the search was rooted at; see InEndgame and the
	// early/middle-game evaluation split in internal/engine.
	Turn uint16

	// Material is the centipawn balance, positive favors White. It
	// includes king value, so capturing a king produces a large swing
	// that the search treats as terminal.
	Material int16

	// AbsoluteMaterial is the sum of all non-king material currently on
	// the board, used by InEndgame.
	AbsoluteMaterial int16

	KingSquare [2]Square

	// Hash is the Zobrist hash, maintained incrementally by addPiece,
	// removePieceAt, placePieceAt and the side-to-move flip in MakeMove.
	Hash uint64
}

// NewBoard returns an empty board with no pieces placed.
func NewBoard() Board {
	return Board{KingSquare: [2]Square{NoSquare, NoSquare}}
}

// Occupied returns the union of both teams' occupied squares.
func (b *Board) Occupied() Bitboard {
	return b.AllPieces[White] | b.AllPieces[Black]
}

// PieceAt returns the piece occupying sq, or Empty.
func (b *Board) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)
	if b.AllPieces[White]&bb != 0 {
		for k := Pawn; k <= King; k++ {
			if b.Pieces[White][k]&bb != 0 {
				return Piece{Team: White, Kind: k}
			}
		}
	} else if b.AllPieces[Black]&bb != 0 {
		for k := Pawn; k <= King; k++ {
			if b.Pieces[Black][k]&bb != 0 {
				return Piece{Team: Black, Kind: k}
			}
		}
	}
	return Empty
}

// IsEmpty returns true if no piece occupies sq.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Occupied()&SquareBB(sq) == 0
}

// addPiece places a piece on an empty square, updating occupancy, the king
// square cache and the incremental hash. Used only while loading a FEN.
func (b *Board) addPiece(p Piece, sq Square) {
	bb := SquareBB(sq)
	b.Pieces[p.Team][p.Kind] |= bb
	b.AllPieces[p.Team] |= bb
	if p.Kind == King {
		b.KingSquare[p.Team] = sq
	}
	b.Hash ^= ZobristPiece(sq, p)
}

// removePieceAt clears whatever piece occupies sq and returns it.
func (b *Board) removePieceAt(sq Square) Piece {
	p := b.PieceAt(sq)
	if p.IsEmpty() {
		return Empty
	}
	bb := SquareBB(sq)
	b.Pieces[p.Team][p.Kind] &^= bb
	b.AllPieces[p.Team] &^= bb
	b.Hash ^= ZobristPiece(sq, p)
	return p
}

// placePieceAt places p on sq, which must currently be empty.
func (b *Board) placePieceAt(p Piece, sq Square) {
	bb := SquareBB(sq)
	b.Pieces[p.Team][p.Kind] |= bb
	b.AllPieces[p.Team] |= bb
	if p.Kind == King {
		b.KingSquare[p.Team] = sq
	}
	b.Hash ^= ZobristPiece(sq, p)
}

// MakeMove returns the board resulting from playing m, leaving b untouched.
// It returns an error if there is no piece belonging to the side to move on
// m.From — the one way a Move can be ill-formed against a given board.
//
// There is no legality check: a move that walks into or past check is
// applied exactly like any other. A move that captures the opponent's king
// is legal by this convention too, which is how the search recognizes a
// won position — see internal/engine's search for the king-capture
// terminal case.
func (b Board) MakeMove(m Move) (Board, error) {
	mover := b.PieceAt(m.From)
	if mover.IsEmpty() || mover.Team != b.ToPlay {
		return Board{}, fmt.Errorf("board: no piece for side to move at %s", m.From)
	}

	next := b

	if captured := next.PieceAt(m.To); !captured.IsEmpty() {
		next.removePieceAt(m.To)
		if next.ToPlay == White {
			next.Material += captured.Value()
		} else {
			next.Material -= captured.Value()
		}
		if captured.Kind != King {
			next.AbsoluteMaterial -= captured.Value()
		}
	}

	next.removePieceAt(m.From)

	placedKind := mover.Kind
	if m.IsPromotion {
		placedKind = Queen
		gain := Queen.Value() - Pawn.Value()
		if next.ToPlay == White {
			next.Material += gain
		} else {
			next.Material -= gain
		}
		next.AbsoluteMaterial += gain
	}
	next.placePieceAt(Piece{Team: mover.Team, Kind: placedKind}, m.To)

	next.ToPlay = next.ToPlay.Other()
	next.Hash ^= ZobristSideToMove()

	return next, nil
}

// MakeNullMove returns a copy of b with the side to move flipped and
// nothing else changed, used by null-move pruning to probe whether the
// opponent has a good reply even for free.
func (b Board) MakeNullMove() Board {
	next := b
	next.ToPlay = next.ToPlay.Other()
	next.Hash ^= ZobristSideToMove()
	return next
}

// ComputeHash recomputes the Zobrist hash from scratch, independent of the
// incremental bookkeeping in MakeMove. Used by tests to check the
// incremental hash hasn't drifted.
func (b *Board) ComputeHash() uint64 {
	var h uint64
	for t := White; t <= Black; t++ {
		for k := Pawn; k <= King; k++ {
			bb := b.Pieces[t][k]
			for bb != 0 {
				sq := bb.PopLSB()
				h ^= ZobristPiece(sq, Piece{Team: t, Kind: k})
			}
		}
	}
	if b.ToPlay == Black {
		h ^= ZobristSideToMove()
	}
	return h
}

// InEndgame reports whether non-king material has dropped low enough that
// evaluation should use the endgame term instead of the early/middle-game
// heatmap-and-mobility terms, and that null-move pruning should be
// disabled to avoid zugzwang positions.
func (b *Board) InEndgame() bool {
	return b.AbsoluteMaterial <= endgameMaterialThreshold
}

// String returns a human-readable board diagram, useful in logs and test
// failure output.
func (b *Board) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			s += b.PieceAt(NewSquare(file, rank)).String() + " "
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n"
	s += fmt.Sprintf("to play: %s  turn: %d  material: %d\n", b.ToPlay, b.Turn, b.Material)
	return s
}
