package eval

import (
	"testing"

	"github.com/negamaxchess/chesscore/internal/board"
)

func mustFEN(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestEvaluateStartposSymmetric(t *testing.T) {
	pos := board.NewPosition()
	score := Evaluate(pos, board.White)
	if score < -20 || score > 20 {
		t.Errorf("startpos score = %d, want within +/-20 of 0", score)
	}
}

func TestEvaluateKPvKFavorsSideWithPawn(t *testing.T) {
	pos := mustFEN(t, "8/8/8/4k3/8/4P3/4K3/8 w - - 0 1")
	score := Evaluate(pos, board.White)
	if score < 50 {
		t.Errorf("KPvK score = %d, want >= 50", score)
	}
}

func TestEvaluateCheckmateIsSignedByEngineColor(t *testing.T) {
	// Fool's mate: white to move is checkmated.
	pos := mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !pos.IsCheckmate() {
		t.Fatalf("expected checkmate position")
	}
	if got := Evaluate(pos, board.White); got != -MateValue {
		t.Errorf("Evaluate(engine=white, checkmated) = %d, want %d", got, -MateValue)
	}
	if got := Evaluate(pos, board.Black); got != MateValue {
		t.Errorf("Evaluate(engine=black, opponent checkmated) = %d, want %d", got, MateValue)
	}
}

func TestEvaluateStalemateIsZero(t *testing.T) {
	pos := mustFEN(t, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if !pos.IsStalemate() {
		t.Fatalf("expected stalemate position")
	}
	if got := Evaluate(pos, board.White); got != 0 {
		t.Errorf("Evaluate(stalemate) = %d, want 0", got)
	}
}

func TestEvaluateMirrorSymmetry(t *testing.T) {
	white := mustFEN(t, "4k3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	black := mustFEN(t, "4k3/4r3/8/8/8/8/8/4K3 b - - 0 1")

	got := Evaluate(white, board.White)
	want := -Evaluate(black, board.Black)
	if got != want {
		t.Errorf("mirrored rook endgame not symmetric: white-side=%d, -(black-side)=%d", got, want)
	}
}
