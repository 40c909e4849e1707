package board

// Team represents the color of a square's occupant, including the
// unoccupied case.
type Team uint8

const (
	White Team = iota
	Black
	Neither
)

// PlayableTeam is a Team restricted to the two sides that can move.
type PlayableTeam = Team

// Other returns the opposing team.
func (t Team) Other() Team {
	return t ^ 1
}

// String returns the team's name.
func (t Team) String() string {
	switch t {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Neither"
	}
}

// PieceKind represents the type of a chess piece, or None for an empty square.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	NoPieceKind
)

// String returns the piece kind's name.
func (pk PieceKind) String() string {
	switch pk {
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece kind (lowercase).
func (pk PieceKind) Char() byte {
	chars := []byte{'p', 'r', 'n', 'b', 'q', 'k', ' '}
	if pk > NoPieceKind {
		return ' '
	}
	return chars[pk]
}

// PieceValue is the material value of each PieceKind in centipawns.
// King is "effectively infinite" for terminal handling, per spec.
var PieceValue = [7]int16{
	Pawn:        100,
	Rook:        500,
	Knight:      300,
	Bishop:      325,
	Queen:       900,
	King:        5000,
	NoPieceKind: 0,
}

// Value returns the material value of the piece kind in centipawns.
func (pk PieceKind) Value() int16 {
	if pk > NoPieceKind {
		return 0
	}
	return PieceValue[pk]
}

// Piece combines a PlayableTeam and PieceKind, with an Empty sentinel.
type Piece struct {
	Team Team
	Kind PieceKind
}

// Empty is the sentinel for an unoccupied square.
var Empty = Piece{Team: Neither, Kind: NoPieceKind}

// NewPiece constructs a Piece from a team and kind.
func NewPiece(team Team, kind PieceKind) Piece {
	return Piece{Team: team, Kind: kind}
}

// IsEmpty returns true if the piece is the Empty sentinel.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPieceKind
}

// Index returns the piece's 0-11 Zobrist index: kind + team*6.
func (p Piece) Index() int {
	return int(p.Kind) + int(p.Team)*6
}

// Value returns the piece's material value in centipawns.
func (p Piece) Value() int16 {
	return p.Kind.Value()
}

// String returns the FEN character for the piece: uppercase for White,
// lowercase for Black, " " for Empty.
func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	c := p.Kind.Char()
	if p.Team == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to a Piece. Returns Empty for any
// character that isn't a recognized piece letter.
func PieceFromChar(c byte) Piece {
	team := White
	lower := c
	if c >= 'a' && c <= 'z' {
		team = Black
	} else {
		lower = c + ('a' - 'A')
	}

	switch lower {
	case 'p':
		return NewPiece(team, Pawn)
	case 'r':
		return NewPiece(team, Rook)
	case 'n':
		return NewPiece(team, Knight)
	case 'b':
		return NewPiece(team, Bishop)
	case 'q':
		return NewPiece(team, Queen)
	case 'k':
		return NewPiece(team, King)
	default:
		return Empty
	}
}
