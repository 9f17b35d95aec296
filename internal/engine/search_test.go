package engine

import (
	"testing"

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

func TestNegamaxFindsScholarsMate(t *testing.T) {
	// White to move, Qxf7# is mate in one.
	pos := mustFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 4 3")
	s := NewSearcher(board.White)
	score, move := s.Negamax(pos, negInfinity, -negInfinity, 3, 0)
	if move.String() != "f3f7" {
		t.Errorf("best move = %s, want f3f7 (Qxf7#)", move.String())
	}
	if score < eval.MateThreshold {
		t.Errorf("score = %d, want >= mate threshold %d", score, eval.MateThreshold)
	}
}

func TestNegamaxReturnsLegalMoveFromStartpos(t *testing.T) {
	pos := board.NewPosition()
	s := NewSearcher(board.White)
	_, move := s.Negamax(pos, negInfinity, -negInfinity, 3, 0)
	if move == board.NoMove {
		t.Fatal("negamax returned no move from the starting position")
	}
	legal := pos.GenerateLegalMoves()
	if !legal.Contains(move) {
		t.Errorf("negamax returned illegal move %s", move.String())
	}
}

func TestNegamaxBalancesPushPop(t *testing.T) {
	pos := board.NewPosition()
	hashBefore := pos.Hash
	s := NewSearcher(board.White)
	s.Negamax(pos, negInfinity, -negInfinity, 3, 0)
	if pos.Hash != hashBefore {
		t.Errorf("position hash changed after search: before=%016x after=%016x", hashBefore, pos.Hash)
	}
}

func TestQuiescenceStandPatCutoff(t *testing.T) {
	pos := board.NewPosition()
	s := NewSearcher(board.White)
	// The symmetric start position stands pat at 0, which is >= beta (-1),
	// so the stand-pat score itself (not beta) is returned.
	score := s.Quiescence(pos, negInfinity, -1)
	if score != 0 {
		t.Errorf("expected stand-pat cutoff to return the stand-pat score 0 at startpos, got %d", score)
	}
}
