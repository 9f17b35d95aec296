package player

import (
	"testing"
	"time"

	"github.com/negamaxchess/chesscore/internal/board"
	"github.com/negamaxchess/chesscore/internal/eval"
)

func mustFEN(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestSearchPlayerFindsScholarsMate(t *testing.T) {
	pos := mustFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 4 3")
	sp := NewSearchPlayer(Config{
		Color:      board.White,
		DepthLimit: 4,
		TimeLimit:  5 * time.Second,
	})

	move := sp.ChooseMove(pos)
	if move.String() != "f3f7" {
		t.Errorf("ChooseMove = %s, want f3f7 (Qxf7#)", move.String())
	}
}

func TestSearchPlayerReturnsLegalMoveFromStartpos(t *testing.T) {
	pos := board.NewPosition()
	sp := NewSearchPlayer(Config{
		Color:      board.White,
		DepthLimit: 3,
		TimeLimit:  2 * time.Second,
	})

	move := sp.ChooseMove(pos)
	legal := pos.GenerateLegalMoves()
	if !legal.Contains(move) {
		t.Errorf("ChooseMove returned illegal move %s", move.String())
	}
}

func TestSearchPlayerDepthLimitIsExclusive(t *testing.T) {
	pos := board.NewPosition()
	sp := NewSearchPlayer(Config{
		Color:      board.White,
		DepthLimit: 1,
		TimeLimit:  2 * time.Second,
	})

	var iterations []int
	sp.OnIteration = func(depth int, score int, move board.Move, elapsed time.Duration) {
		iterations = append(iterations, depth)
	}

	sp.ChooseMove(pos)
	if len(iterations) != 0 {
		t.Errorf("depth_limit=1 should complete zero depths (range is [1, depth_limit)), got %v", iterations)
	}
}

func TestSearchPlayerOnIterationFiresPerDepth(t *testing.T) {
	pos := board.NewPosition()
	sp := NewSearchPlayer(Config{
		Color:      board.White,
		DepthLimit: 3,
		TimeLimit:  5 * time.Second,
	})

	var depths []int
	sp.OnIteration = func(depth int, score int, move board.Move, elapsed time.Duration) {
		depths = append(depths, depth)
	}
	sp.ChooseMove(pos)

	if len(depths) != 2 {
		t.Fatalf("expected depths [1 2], got %v", depths)
	}
	for i, d := range depths {
		if d != i+1 {
			t.Errorf("depths[%d] = %d, want %d", i, d, i+1)
		}
	}
}

func TestSearchPlayerStopsOnMateFound(t *testing.T) {
	pos := mustFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 4 3")
	sp := NewSearchPlayer(Config{
		Color:      board.White,
		DepthLimit: 10,
		TimeLimit:  10 * time.Second,
	})

	var lastScore int
	var completed int
	sp.OnIteration = func(depth int, score int, move board.Move, elapsed time.Duration) {
		lastScore = score
		completed = depth
	}
	sp.ChooseMove(pos)

	if lastScore <= eval.MateThreshold {
		t.Errorf("final iteration score = %d, want > mate threshold %d", lastScore, eval.MateThreshold)
	}
	if completed >= 10 {
		t.Errorf("expected early break on mate, ran to depth %d", completed)
	}
}

func TestSearchPlayerColor(t *testing.T) {
	sp := NewSearchPlayer(Config{Color: board.Black, DepthLimit: 1, TimeLimit: time.Second})
	if sp.Color() != board.Black {
		t.Errorf("Color() = %v, want Black", sp.Color())
	}
}

func TestSearchPlayerMissingBookFallsBackToSearch(t *testing.T) {
	pos := board.NewPosition()
	sp := NewSearchPlayer(Config{
		Color:      board.White,
		DepthLimit: 2,
		TimeLimit:  2 * time.Second,
		BookPath:   "/nonexistent/path/to/book.bin",
	})

	move := sp.ChooseMove(pos)
	legal := pos.GenerateLegalMoves()
	if !legal.Contains(move) {
		t.Errorf("ChooseMove returned illegal move %s after book load failure", move.String())
	}
}

func TestRandomPlayerReturnsLegalMove(t *testing.T) {
	pos := board.NewPosition()
	rp := NewRandomPlayer(board.White)
	for i := 0; i < 20; i++ {
		move := rp.ChooseMove(pos)
		legal := pos.GenerateLegalMoves()
		if !legal.Contains(move) {
			t.Fatalf("RandomPlayer returned illegal move %s", move.String())
		}
	}
}

func TestRandomPlayerColor(t *testing.T) {
	rp := NewRandomPlayer(board.Black)
	if rp.Color() != board.Black {
		t.Errorf("Color() = %v, want Black", rp.Color())
	}
}
