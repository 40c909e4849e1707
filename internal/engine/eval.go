// Package engine implements the search and evaluation layer on top of
// internal/board: static evaluation, the transposition and killer tables,
// move ordering, iterative-deepening negamax search, and quiescence.
package engine

import (
	"math/bits"

	"github.com/tpeck/chesscore/internal/board"
)

// Evaluation phase boundaries, in fullmoves (board.Board.Turn).
const (
	earlyGameTurnLimit  = 30
	middleGameTurnLimit = 70
)

// maxAbsoluteMaterial is "78 pawns' worth plus one", the normalizing
// constant for the trade bonus: the nominal ceiling on AbsoluteMaterial in
// a legal position.
const maxAbsoluteMaterial = 78*100 + 100

// heatmapEntry is one (mask, weight) pair of a piece kind's positional
// table: a bonus of weight centipawns per bit of the kind's bitboard that
// falls inside mask. All masks and weights are expressed from White's
// point of view; Black's contribution mirrors the mask vertically and
// flips the sign, since StaticEvaluation is White-relative throughout.
type heatmapEntry struct {
	mask   board.Bitboard
	weight int16
}

var (
	center4     = board.SquareBB(board.D4) | board.SquareBB(board.E4) | board.SquareBB(board.D5) | board.SquareBB(board.E5)
	extCenter   = (board.FileC | board.FileD | board.FileE | board.FileF) & (board.Rank3 | board.Rank4 | board.Rank5 | board.Rank6) &^ center4
	rimSquares  = board.FileA | board.FileH | board.Rank1 | board.Rank8
	cornerMask  = board.SquareBB(board.A1) | board.SquareBB(board.H1) | board.SquareBB(board.A8) | board.SquareBB(board.H8)
	longDiagA1H8 = diagonalMask(board.A1, 1, 1)
	longDiagA8H1 = diagonalMask(board.A8, 1, -1)
	centerFiles  = board.FileD | board.FileE
)

// diagonalMask builds the full diagonal through sq in direction (df, dr).
func diagonalMask(sq board.Square, df, dr int) board.Bitboard {
	var bb board.Bitboard
	f, r := sq.File(), sq.Rank()
	for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
		bb |= board.SquareBB(board.NewSquare(f, r))
		f += df
		r += dr
	}
	f, r = sq.File()-df, sq.Rank()-dr
	for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
		bb |= board.SquareBB(board.NewSquare(f, r))
		f -= df
		r -= dr
	}
	return bb
}

var pawnHeatmap = []heatmapEntry{
	{center4, 15},
	{extCenter, 8},
	{board.Rank7, 30},
	{board.FileA | board.FileH, -5},
}

var knightHeatmap = []heatmapEntry{
	{rimSquares, -20},
	{center4, 20},
	{extCenter, 10},
}

var bishopHeatmap = []heatmapEntry{
	{longDiagA1H8 | longDiagA8H1, 10},
	{cornerMask, -15},
}

var rookHeatmap = []heatmapEntry{
	{board.Rank7, 20},
	{centerFiles, 5},
}

var queenHeatmap = []heatmapEntry{
	{center4, 10},
	{rimSquares, -5},
}

var kingHeatmap = []heatmapEntry{
	{board.Rank1, 10},
	{center4, -30},
}

// mirrorVertical flips a bitboard across the board's horizontal midline
// (rank r <-> rank 7-r), turning a White-oriented mask into its Black
// equivalent. Each rank occupies one byte of the little-endian rank-file
// layout, so this is exactly a byte-order reversal.
func mirrorVertical(bb board.Bitboard) board.Bitboard {
	return board.Bitboard(bits.ReverseBytes64(uint64(bb)))
}

// heatmapScore adds up one kind's masked-weight contribution for both
// sides, White positive and Black negative.
func heatmapScore(b *board.Board, kind board.PieceKind, table []heatmapEntry) int16 {
	var score int16
	white := b.Pieces[board.White][kind]
	black := b.Pieces[board.Black][kind]
	for _, h := range table {
		score += h.weight * int16((h.mask & white).PopCount())
		score -= h.weight * int16((mirrorVertical(h.mask) & black).PopCount())
	}
	return score
}

// heatmapEvaluation is the early-game positional term: for each kind,
// count bits of (mask & pieces[team][kind]) and multiply by weight,
// White's tables contributing positively and Black's (mirrored)
// contributing negatively.
func heatmapEvaluation(b *board.Board) int16 {
	return heatmapScore(b, board.Pawn, pawnHeatmap) +
		heatmapScore(b, board.Knight, knightHeatmap) +
		heatmapScore(b, board.Bishop, bishopHeatmap) +
		heatmapScore(b, board.Rook, rookHeatmap) +
		heatmapScore(b, board.Queen, queenHeatmap) +
		heatmapScore(b, board.King, kingHeatmap)
}

// mobilityCount sums the pseudo-attack counts of team's knights, bishops,
// rooks and queens, ignoring occupancy of friendly squares (the raw attack
// count, not safe-square count, per the "material + mobility count/8"
// simplification).
func mobilityCount(b *board.Board, team board.Team) int32 {
	occupied := b.Occupied()
	var count int32
	for _, kind := range [...]board.PieceKind{board.Knight, board.Bishop, board.Rook, board.Queen} {
		pieces := b.Pieces[team][kind]
		for pieces != 0 {
			sq := pieces.PopLSB()
			var attacks board.Bitboard
			switch kind {
			case board.Knight:
				attacks = board.KnightAttacks(sq)
			case board.Bishop:
				attacks = board.BishopAttacks(sq, occupied)
			case board.Rook:
				attacks = board.RookAttacks(sq, occupied)
			case board.Queen:
				attacks = board.QueenAttacks(sq, occupied)
			}
			count += int32(attacks.PopCount())
		}
	}
	return count
}

// middleGameMobility is material + (Σ mobility)>>3, the simpler
// formulation spec.md §4.3 permits in place of full king-safety scoring;
// the material term is added once, by StaticEvaluation's caller, so this
// returns only the mobility contribution.
func middleGameMobility(b *board.Board) int16 {
	diff := mobilityCount(b, board.White) - mobilityCount(b, board.Black)
	return int16(diff >> 3)
}

// tradeBonus rewards reducing the opponent's force when already ahead on
// material: if Material favors a side, add (M - AbsoluteMaterial) >> 7 in
// that side's favor, where M is the nominal material ceiling. At even
// material it contributes nothing.
func tradeBonus(b *board.Board) int16 {
	if b.Material == 0 {
		return 0
	}
	bonus := (int16(maxAbsoluteMaterial) - b.AbsoluteMaterial) >> 7
	if b.Material > 0 {
		return bonus
	}
	return -bonus
}

// StaticEvaluation returns the centipawn evaluation of b from White's
// perspective: material, the trade bonus, and a phase term selected by
// b.Turn (early-game heatmaps, middle-game mobility, or nothing in the
// end-game, per spec.md §4.3). It does not consult the side to move —
// callers that need a mover-relative score negate it themselves when
// Black is to play.
func StaticEvaluation(b *board.Board) int16 {
	score := b.Material + tradeBonus(b)

	switch {
	case b.Turn <= earlyGameTurnLimit:
		score += heatmapEvaluation(b)
	case b.Turn <= middleGameTurnLimit:
		score += middleGameMobility(b)
	}

	return score
}
