package eval

import "github.com/negamaxchess/chesscore/internal/board"

// Passed pawn bonuses. MG is a flat bonus; EG scales with how close the
// pawn is to promoting.
const (
	passedMG = 20
	passedEG = 50
)

// Evaluate scores pos from engineColor's perspective, positive meaning
// engineColor stands better. It is a pure function: no I/O, no
// allocation, safe to call from any goroutine on an unshared position.
func Evaluate(pos *board.Position, engineColor board.Color) int {
	return EvaluateCached(pos, engineColor, nil)
}

// EvaluateCached behaves like Evaluate, but consults cache (if non-nil)
// before calling pos.CanClaimDraw(), which walks the full repetition
// history on every invocation. cache may be nil, in which case this is
// exactly Evaluate.
func EvaluateCached(pos *board.Position, engineColor board.Color, cache *DrawCache) int {
	if pos.IsCheckmate() {
		if pos.Turn() == engineColor {
			return -MateValue
		}
		return MateValue
	}
	if pos.IsStalemate() || pos.IsInsufficientMaterial() || isDraw(pos, cache) {
		return 0
	}

	phase := 0
	for pt := board.Knight; pt <= board.Queen; pt++ {
		pieces := pos.PiecesOf(pt, board.White) | pos.PiecesOf(pt, board.Black)
		phase += pieces.PopCount() * phaseWeight[pt]
	}
	if phase > MaxPhase {
		phase = MaxPhase
	}

	whitePawns := pos.PiecesOf(board.Pawn, board.White)
	blackPawns := pos.PiecesOf(board.Pawn, board.Black)

	mg, eg := 0, 0
	for pt := board.Pawn; pt <= board.King; pt++ {
		bb := pos.PiecesOf(pt, board.White)
		for bb != 0 {
			sq := bb.PopLSB()
			mg += pieceValueMG[pt] + pstMGWhite[pt][sq]
			eg += pieceValueEG[pt] + pstEGWhite[pt][sq]
			if pt == board.Pawn && PassedPawnMask[board.White][sq]&blackPawns == 0 {
				rank := sq.Rank()
				mg += passedMG
				eg += passedEG + rank*10
			}
		}

		bb = pos.PiecesOf(pt, board.Black)
		for bb != 0 {
			sq := bb.PopLSB()
			mg -= pieceValueMG[pt] + pstMGBlack[pt][sq]
			eg -= pieceValueEG[pt] + pstEGBlack[pt][sq]
			if pt == board.Pawn && PassedPawnMask[board.Black][sq]&whitePawns == 0 {
				rank := 7 - sq.Rank()
				mg -= passedMG
				eg -= passedEG + rank*10
			}
		}
	}

	blended := (mg*phase + eg*(MaxPhase-phase)) / MaxPhase

	if engineColor == board.White {
		return blended
	}
	return -blended
}

// isDraw checks CanClaimDraw through cache, if one was supplied.
func isDraw(pos *board.Position, cache *DrawCache) bool {
	if draw, found := cache.probe(pos.Hash); found {
		return draw
	}
	draw := pos.CanClaimDraw()
	cache.store(pos.Hash, draw)
	return draw
}
