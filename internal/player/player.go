// Package player binds the search core into the two playable variants
// (C6, C7, C8): a search player that consults an opening book before
// iterative deepening, and a random-mover used as a trivial baseline.
package player

import (
	"math/rand"
	"time"

	"github.com/negamaxchess/chesscore/internal/board"
	"github.com/negamaxchess/chesscore/internal/book"
	"github.com/negamaxchess/chesscore/internal/engine"
	"github.com/negamaxchess/chesscore/internal/eval"
	"github.com/negamaxchess/chesscore/internal/tablebase"
)

// Player is the capability every move-choosing opponent implements.
type Player interface {
	Color() board.Color
	ChooseMove(pos *board.Position) board.Move
}

// Config bundles a search player's construction arguments. TablebasePath
// names an endgame tablebase directory; since no on-disk tablebase
// format is implemented, it only ever yields a no-op prober (see
// loadTablebase), so search never actually queries it.
type Config struct {
	Color         board.Color
	DepthLimit    int
	TimeLimit     time.Duration
	BookPath      string
	TablebasePath string
}

// SearchPlayer is the C8 search variant: C7 (book) consulted first, C6
// (iterative deepening) on a miss.
type SearchPlayer struct {
	color      board.Color
	depthLimit int
	timeLimit  time.Duration
	prober     tablebase.Prober

	book     *book.Book
	searcher *engine.Searcher

	// OnIteration, if set, is called once per completed iterative-deepening
	// depth with the depth's score, best move, and elapsed time so far. It
	// runs on the caller's goroutine, after the depth has fully completed,
	// never from inside the search itself.
	OnIteration func(depth int, score int, move board.Move, elapsed time.Duration)
}

// NewSearchPlayer constructs a search player for cfg.Color. If cfg.BookPath
// is non-empty, the book is loaded eagerly; a load failure is logged and
// the player proceeds book-less, per C7's error policy.
func NewSearchPlayer(cfg Config) *SearchPlayer {
	sp := &SearchPlayer{
		color:      cfg.Color,
		depthLimit: cfg.DepthLimit,
		timeLimit:  cfg.TimeLimit,
		prober:     loadTablebase(cfg.TablebasePath),
		searcher:   engine.NewSearcher(cfg.Color),
	}
	if cfg.BookPath != "" {
		sp.book = loadBook(cfg.BookPath)
	}
	return sp
}

// Color returns the side sp plays.
func (sp *SearchPlayer) Color() board.Color {
	return sp.color
}

// ChooseMove implements C8: consult the book, falling back to the
// iterative-deepening driver on a miss.
func (sp *SearchPlayer) ChooseMove(pos *board.Position) board.Move {
	if move, ok := sp.book.Probe(pos); ok {
		return move
	}
	return sp.deepen(pos)
}

// deepen is C6: repeatedly invoke negamax at depths 1, 2, ... under a
// soft time budget, returning the deepest completed iteration's move.
func (sp *SearchPlayer) deepen(pos *board.Position) board.Move {
	if sp.searcher.TT.Len() >= engine.DefaultTTCapacity {
		sp.searcher.TT.Clear()
	}
	sp.searcher.Orderer.ResetKillers()
	sp.searcher.Orderer.DecayHistory()

	start := time.Now()
	budget := time.Duration(float64(sp.timeLimit) / 3.5)

	var bestMove board.Move
	for depth := 1; depth < sp.depthLimit; depth++ {
		if time.Since(start) > budget {
			break
		}

		score, move := sp.searcher.Negamax(pos, -engine.Infinity, engine.Infinity, depth, 0)
		bestMove = move

		if sp.OnIteration != nil {
			sp.OnIteration(depth, score, move, time.Since(start))
		}

		if score > eval.MateThreshold {
			break
		}
	}

	return bestMove
}

// RandomPlayer returns a uniformly random legal move, per C8's trivial
// baseline variant.
type RandomPlayer struct {
	color board.Color
	rng   *rand.Rand
}

// NewRandomPlayer constructs a random mover for color.
func NewRandomPlayer(color board.Color) *RandomPlayer {
	return &RandomPlayer{color: color, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Color returns the side rp plays.
func (rp *RandomPlayer) Color() board.Color {
	return rp.color
}

// ChooseMove picks uniformly among pos's legal moves.
func (rp *RandomPlayer) ChooseMove(pos *board.Position) board.Move {
	legal := pos.GenerateLegalMoves()
	if legal.Len() == 0 {
		return board.NoMove
	}
	return legal.Get(rp.rng.Intn(legal.Len()))
}
