package board

import "fmt"

// Move is an immutable record of a single pseudo-legal move, plus a mutable
// scratch field used by move ordering. Promotions are always to a queen:
// the generator tags the destination rank, not the piece, since the spec's
// scope has no under-promotion selection.
type Move struct {
	From         Square
	To           Square
	MovedKind    PieceKind
	CapturedKind PieceKind
	IsPromotion  bool

	// OrderingValue is mutable scratch space written by move ordering
	// (internal/engine) and read back by the sort step. It is not part of
	// move identity.
	OrderingValue uint32
}

// NoMove is the zero-value sentinel for "no move".
var NoMove = Move{MovedKind: NoPieceKind, CapturedKind: NoPieceKind}

// IsQuiet returns true if the move makes no capture.
func (m Move) IsQuiet() bool {
	return m.CapturedKind == NoPieceKind
}

// IsNone reports whether m is the zero-value NoMove sentinel.
func (m Move) IsNone() bool {
	return m.MovedKind == NoPieceKind
}

// String returns the UCI format of the move (e.g. "e2e4"); promotions are
// always rendered as queen promotions, per IsPromotion's scope.
func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion {
		s += "q"
	}
	return s
}

// FromTo returns the (from, to) pair used as the move's ordering/killer key.
func (m Move) FromTo() (Square, Square) {
	return m.From, m.To
}

// ParseMove parses a UCI move string ("e2e4", optionally with a trailing
// promotion letter which is accepted but ignored) against a board, resolving
// MovedKind/CapturedKind/IsPromotion from the board's current occupants.
// Returns an error if there is no piece belonging to the side to move on
// the from-square.
func ParseMove(s string, b *Board) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("board: invalid move string %q", s)
	}

	from, err := FromUCI(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := FromUCI(s[2:4])
	if err != nil {
		return NoMove, err
	}

	mover := b.PieceAt(from)
	if mover.IsEmpty() || mover.Team != b.ToPlay {
		return NoMove, fmt.Errorf("board: no piece for side to move at %s", from)
	}

	captured := b.PieceAt(to)
	m := Move{
		From:      from,
		To:        to,
		MovedKind: mover.Kind,
	}
	if !captured.IsEmpty() {
		m.CapturedKind = captured.Kind
	} else {
		m.CapturedKind = NoPieceKind
	}

	promotionRank := Rank8
	if b.ToPlay == Black {
		promotionRank = Rank1
	}
	if mover.Kind == Pawn && SquareBB(to)&promotionRank != 0 {
		m.IsPromotion = true
	}

	return m, nil
}

// MoveList is a fixed-capacity list of moves, avoiding per-position
// allocation during search.
type MoveList struct {
	moves [218]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set overwrites the move at index i, used to record ordering scores.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Slice returns the in-use portion of the list as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
