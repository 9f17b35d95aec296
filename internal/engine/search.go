// Package engine implements the move-ordering, transposition, and
// negamax/quiescence search core of the chess AI.
package engine

import (
	"github.com/negamaxchess/chesscore/internal/board"
	"github.com/negamaxchess/chesscore/internal/eval"
)

// negInfinity is the sentinel "no move has been scored yet" value. It is
// far below any real evaluation or mate score so the first candidate in
// a move loop always replaces it.
const negInfinity = -(eval.MateValue + MaxPly + 1)

// Infinity is the bound a caller should pass as beta (and its negation
// as alpha) for a root call, wide enough to never clip a real score.
const Infinity = -negInfinity

// nullMoveReduction is the depth reduction applied to the verification
// search after a null move.
const nullMoveReduction = 2

// Searcher runs negamax/quiescence search for one engine color. The
// transposition table, killer table, and history table it owns persist
// across choose_move calls and are only reset/decayed by the caller
// between iterative-deepening runs.
type Searcher struct {
	Color     board.Color
	TT        *TranspositionTable
	Orderer   *MoveOrderer
	DrawCache *eval.DrawCache
}

// defaultDrawCacheEntries bounds the draw-detection cache; it is
// indexed by Zobrist hash like the TT but kept separate since its
// lifetime and hit pattern (interior nodes only, not all search nodes)
// differ.
const defaultDrawCacheEntries = 1 << 16

// NewSearcher creates a searcher for the given engine color with a
// fresh transposition table, move orderer, and draw-detection cache.
func NewSearcher(color board.Color) *Searcher {
	return &Searcher{
		Color:     color,
		TT:        NewTranspositionTable(),
		Orderer:   NewMoveOrderer(),
		DrawCache: eval.NewDrawCache(defaultDrawCacheEntries),
	}
}

// Negamax searches pos to depthRemaining plies and returns a score from
// the side-to-move's perspective along with the best move found, or
// board.NoMove if the node is terminal. pos is mutated and restored
// (push/pop balanced) on every return path.
func (s *Searcher) Negamax(pos *board.Position, alpha, beta, depthRemaining, ply int) (int, board.Move) {
	originalAlpha := alpha
	key := pos.Hash

	if entry, found := s.TT.Probe(key); found && entry.Depth >= depthRemaining {
		switch entry.Flag {
		case TTExact:
			return entry.Score, entry.BestMove
		case TTLowerBound:
			if entry.Score > alpha {
				alpha = entry.Score
			}
		case TTUpperBound:
			if entry.Score < beta {
				beta = entry.Score
			}
		}
		if alpha >= beta {
			return entry.Score, entry.BestMove
		}
	}

	if pos.IsGameOver() {
		score := eval.EvaluateCached(pos, s.Color, s.DrawCache)
		if pos.Turn() == s.Color {
			return score, board.NoMove
		}
		base := -score
		if base > eval.MateThreshold {
			base -= ply
		}
		return base, board.NoMove
	}

	if depthRemaining <= 0 {
		return s.Quiescence(pos, alpha, beta), board.NoMove
	}

	if depthRemaining >= 3 && !pos.InCheck() && ply > 0 && pos.HasNonPawnMaterial() {
		undo := pos.MakeNullMove()
		childScore, _ := s.Negamax(pos, -beta, -beta+1, depthRemaining-1-nullMoveReduction, ply+1)
		score := -childScore
		pos.UnmakeNullMove(undo)
		if score >= beta {
			return beta, board.NoMove
		}
	}

	var ttMove board.Move
	if entry, found := s.TT.Probe(key); found {
		ttMove = entry.BestMove
	}

	legal := pos.GenerateLegalMoves()
	ordered := s.Orderer.OrderMoves(pos, legal, ttMove, ply)

	bestScore := negInfinity
	bestMove := board.NoMove

	for _, move := range ordered {
		undo := pos.MakeMove(move)
		childScore, _ := s.Negamax(pos, -beta, -alpha, depthRemaining-1, ply+1)
		score := -childScore
		pos.UnmakeMove(move, undo)

		if score > bestScore {
			bestScore = score
			bestMove = move
			if score > alpha {
				alpha = score
			}
		}

		if score >= beta {
			if !move.IsCapture(pos) && !move.IsPromotion() {
				s.Orderer.UpdateKillers(ply, move)
				s.Orderer.UpdateHistory(pos.Turn(), move, depthRemaining)
			}
			break
		}
	}

	var flag TTFlag
	switch {
	case bestScore <= originalAlpha:
		flag = TTUpperBound
	case bestScore >= beta:
		flag = TTLowerBound
	default:
		flag = TTExact
	}
	s.TT.Store(key, depthRemaining, bestScore, flag, bestMove)

	return bestScore, bestMove
}

// bigDelta is the quiescence delta-pruning margin: roughly a queen's
// value plus a safety buffer.
const bigDelta = 1050

// Quiescence resolves the horizon effect by searching only captures
// and promotions until the position is quiet. The stand-pat evaluation
// is re-signed to the side-to-move's perspective, while the recursive
// call below uses the ordinary negamax sign flip — both must be kept
// exactly as written to match the search this was ported from.
func (s *Searcher) Quiescence(pos *board.Position, alpha, beta int) int {
	standPat := eval.EvaluateCached(pos, s.Color, s.DrawCache)
	if pos.Turn() != s.Color {
		standPat = -standPat
	}

	if standPat >= beta {
		return standPat
	}

	turn := pos.Turn()
	var promoRank board.Bitboard
	if turn == board.White {
		promoRank = board.Rank7
	} else {
		promoRank = board.Rank2
	}
	promoters := pos.PiecesOf(board.Pawn, turn) & promoRank

	if promoters == 0 && standPat < alpha-bigDelta {
		return alpha
	}

	if standPat > alpha {
		alpha = standPat
	}

	captures := pos.GenerateCaptures()
	moves := make([]board.Move, 0, captures.Len())
	for i := 0; i < captures.Len(); i++ {
		moves = append(moves, captures.Get(i))
	}
	sortByVictimValueDescending(pos, moves)

	for _, move := range moves {
		undo := pos.MakeMove(move)
		score := -s.Quiescence(pos, -beta, -alpha)
		pos.UnmakeMove(move, undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

func sortByVictimValueDescending(pos *board.Position, moves []board.Move) {
	values := make([]int, len(moves))
	for i, m := range moves {
		values[i] = captureValue(pos, m)
	}
	for i := 1; i < len(moves); i++ {
		for j := i; j > 0 && values[j] > values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
			moves[j], moves[j-1] = moves[j-1], moves[j]
		}
	}
}
