package board

// GeneratePseudoLegalMoves appends every pseudo-legal move for the side to
// move into ml: pawn pushes, pawn captures and promotions, and attack-table
// lookups for knights, bishops, rooks, queens and the king, each masked
// against the mover's own occupancy.
//
// There is no castling, no en passant, and no legality filtering: a move
// that leaves the mover's own king capturable next ply is generated like
// any other. Pseudo-legal generation relies entirely on the search's
// king-capture-ends-the-line convention instead of check detection.
func (b *Board) GeneratePseudoLegalMoves(ml *MoveList) {
	us := b.ToPlay
	them := us.Other()
	occupied := b.Occupied()
	ownPieces := b.AllPieces[us]
	enemies := b.AllPieces[them]

	b.generatePawnMoves(ml, us, enemies, occupied)

	for _, kind := range [...]PieceKind{Knight, Bishop, Rook, Queen} {
		pieces := b.Pieces[us][kind]
		for pieces != 0 {
			from := pieces.PopLSB()
			attacks := b.slidingOrJumpAttacks(kind, from, occupied) &^ ownPieces
			b.addMovesFromAttacks(ml, from, kind, attacks)
		}
	}

	from := b.KingSquare[us]
	attacks := KingAttacks(from) &^ ownPieces
	b.addMovesFromAttacks(ml, from, King, attacks)
}

// GenerateCaptures appends only capturing moves, including promotion
// captures, plus non-capturing promotion pushes (a pawn reaching the back
// rank is material-significant even without a capture). Used by
// quiescence search, which only wants to resolve captures.
func (b *Board) GenerateCaptures(ml *MoveList) {
	us := b.ToPlay
	them := us.Other()
	enemies := b.AllPieces[them]
	occupied := b.Occupied()

	pawns := b.Pieces[us][Pawn]
	var attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	nonPromoL := attackL &^ promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		from := Square(int(to) - pushDir + 1)
		ml.Add(Move{From: from, To: to, MovedKind: Pawn, CapturedKind: b.PieceAt(to).Kind})
	}
	nonPromoR := attackR &^ promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		from := Square(int(to) - pushDir - 1)
		ml.Add(Move{From: from, To: to, MovedKind: Pawn, CapturedKind: b.PieceAt(to).Kind})
	}

	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		from := Square(int(to) - pushDir + 1)
		ml.Add(Move{From: from, To: to, MovedKind: Pawn, CapturedKind: b.PieceAt(to).Kind, IsPromotion: true})
	}
	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		from := Square(int(to) - pushDir - 1)
		ml.Add(Move{From: from, To: to, MovedKind: Pawn, CapturedKind: b.PieceAt(to).Kind, IsPromotion: true})
	}

	empty := ^occupied
	var push1 Bitboard
	if us == White {
		push1 = pawns.North() & empty & Rank8
	} else {
		push1 = pawns.South() & empty & Rank1
	}
	for push1 != 0 {
		to := push1.PopLSB()
		from := Square(int(to) - pushDir)
		ml.Add(Move{From: from, To: to, MovedKind: Pawn, CapturedKind: NoPieceKind, IsPromotion: true})
	}

	for _, kind := range [...]PieceKind{Knight, Bishop, Rook, Queen} {
		pieces := b.Pieces[us][kind]
		for pieces != 0 {
			from := pieces.PopLSB()
			attacks := b.slidingOrJumpAttacks(kind, from, occupied) & enemies
			b.addMovesFromAttacks(ml, from, kind, attacks)
		}
	}

	from := b.KingSquare[us]
	attacks := KingAttacks(from) & enemies
	b.addMovesFromAttacks(ml, from, King, attacks)
}

// slidingOrJumpAttacks dispatches to the right attack-table lookup for a
// non-pawn, non-king piece kind.
func (b *Board) slidingOrJumpAttacks(kind PieceKind, from Square, occupied Bitboard) Bitboard {
	switch kind {
	case Knight:
		return KnightAttacks(from)
	case Bishop:
		return BishopAttacks(from, occupied)
	case Rook:
		return RookAttacks(from, occupied)
	case Queen:
		return QueenAttacks(from, occupied)
	default:
		return EmptyBB
	}
}

// addMovesFromAttacks appends one Move per destination square set in
// attacks, resolving CapturedKind from the board's current occupant.
func (b *Board) addMovesFromAttacks(ml *MoveList, from Square, kind PieceKind, attacks Bitboard) {
	for attacks != 0 {
		to := attacks.PopLSB()
		ml.Add(Move{From: from, To: to, MovedKind: kind, CapturedKind: b.PieceAt(to).Kind})
	}
}

// generatePawnMoves handles single/double pushes and both capture
// directions, tagging promotions by destination rank. Go has no multi-piece
// promotion choice here: the move is flagged IsPromotion and Board.MakeMove
// always promotes to a queen, per Move's scope.
func (b *Board) generatePawnMoves(ml *MoveList, us Team, enemies, occupied Bitboard) {
	pawns := b.Pieces[us][Pawn]
	empty := ^occupied

	var push1, push2, attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	nonPromo := push1 &^ promotionRank
	for nonPromo != 0 {
		to := nonPromo.PopLSB()
		from := Square(int(to) - pushDir)
		ml.Add(Move{From: from, To: to, MovedKind: Pawn, CapturedKind: NoPieceKind})
	}

	for push2 != 0 {
		to := push2.PopLSB()
		from := Square(int(to) - 2*pushDir)
		ml.Add(Move{From: from, To: to, MovedKind: Pawn, CapturedKind: NoPieceKind})
	}

	nonPromoL := attackL &^ promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		from := Square(int(to) - pushDir + 1)
		ml.Add(Move{From: from, To: to, MovedKind: Pawn, CapturedKind: b.PieceAt(to).Kind})
	}

	nonPromoR := attackR &^ promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		from := Square(int(to) - pushDir - 1)
		ml.Add(Move{From: from, To: to, MovedKind: Pawn, CapturedKind: b.PieceAt(to).Kind})
	}

	promoPush := push1 & promotionRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		from := Square(int(to) - pushDir)
		ml.Add(Move{From: from, To: to, MovedKind: Pawn, CapturedKind: NoPieceKind, IsPromotion: true})
	}

	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		from := Square(int(to) - pushDir + 1)
		ml.Add(Move{From: from, To: to, MovedKind: Pawn, CapturedKind: b.PieceAt(to).Kind, IsPromotion: true})
	}

	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		from := Square(int(to) - pushDir - 1)
		ml.Add(Move{From: from, To: to, MovedKind: Pawn, CapturedKind: b.PieceAt(to).Kind, IsPromotion: true})
	}
}
