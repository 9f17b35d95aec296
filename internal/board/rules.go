package board

// NullMove is a sentinel distinguishable from any legal move, used only
// for null-move pruning. It is not a valid encoding of any real move
// (from == to == H8, which no move ever produces since a move always
// changes square) and must never be looked up with PieceAt/IsCapture.
const NullMove Move = 0xFFFF

// PiecesOf returns the bitboard of all pieces of the given type and color.
func (p *Position) PiecesOf(pt PieceType, c Color) Bitboard {
	return p.Pieces[c][pt]
}

// OccupiedColor returns the bitboard of all squares occupied by the given color.
func (p *Position) OccupiedColor(c Color) Bitboard {
	return p.Occupied[c]
}

// Turn returns the side to move.
func (p *Position) Turn() Color {
	return p.SideToMove
}

// IsCheck returns true if the side to move is in check. Alias of InCheck
// matching the Chess Rules Provider vocabulary.
func (p *Position) IsCheck() bool {
	return p.InCheck()
}

// IsGameOver returns true if the game has ended: checkmate, stalemate,
// insufficient material, or a claimable draw.
func (p *Position) IsGameOver() bool {
	return p.IsCheckmate() || p.IsDraw()
}

// CanClaimDraw returns true if the side to move may claim a draw: the
// 50-move rule, or the current position (identified by Hash) having
// occurred at least twice before in this search/game's move history.
func (p *Position) CanClaimDraw() bool {
	if p.HalfMoveClock >= 100 {
		return true
	}
	return p.isThreefoldRepetition()
}

func (p *Position) isThreefoldRepetition() bool {
	occurrences := 0
	for _, h := range p.RepHistory {
		if h == p.Hash {
			occurrences++
			if occurrences >= 3 {
				return true
			}
		}
	}
	return false
}
