package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN for the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses a FEN string into a Board. Only piece placement, side to
// move and the fullmove number are interpreted. Castling rights, the en
// passant target and the halfmove clock are read far enough to validate
// the field count but otherwise discarded: Board has no representation for
// them, since the move generator never produces castling or en passant
// moves and the search has no fifty-move-rule awareness.
func FromFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Board{}, fmt.Errorf("board: invalid FEN %q: need at least 4 fields, got %d", fen, len(fields))
	}

	b := NewBoard()

	if err := parsePlacement(&b, fields[0]); err != nil {
		return Board{}, err
	}

	switch fields[1] {
	case "w":
		b.ToPlay = White
	case "b":
		b.ToPlay = Black
		b.Hash ^= ZobristSideToMove()
	default:
		return Board{}, fmt.Errorf("board: invalid side to move %q", fields[1])
	}

	b.Turn = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return Board{}, fmt.Errorf("board: invalid fullmove number %q", fields[5])
		}
		b.Turn = uint16(n)
	}

	return b, nil
}

// parsePlacement reads the first FEN field, placing pieces and accumulating
// Material/AbsoluteMaterial as it goes.
func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: invalid piece placement %q: need 8 ranks, got %d", placement, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("board: too many squares in rank %d of %q", rank+1, placement)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			p := PieceFromChar(byte(c))
			if p.IsEmpty() {
				return fmt.Errorf("board: invalid piece character %q", c)
			}

			sq := NewSquare(file, rank)
			b.addPiece(p, sq)
			if p.Kind != King {
				b.AbsoluteMaterial += p.Value()
			}
			if p.Team == White {
				b.Material += p.Value()
			} else {
				b.Material -= p.Value()
			}
			file++
		}
		if file != 8 {
			return fmt.Errorf("board: invalid rank %d of %q: got %d squares, want 8", rank+1, placement, file)
		}
	}

	return nil
}

// ToFEN renders the board's piece placement, side to move and fullmove
// number. Castling rights and the en passant target are always written as
// absent ("-"); the halfmove clock is always written as 0, since Board
// tracks neither.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.ToPlay == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteString(" - - 0 ")
	sb.WriteString(strconv.Itoa(int(b.Turn)))

	return sb.String()
}
