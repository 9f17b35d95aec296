package matchstore

import (
	"os"
	"testing"
	"time"

	"github.com/negamaxchess/chesscore/internal/board"
)

func TestStore(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "chesscore-matchstore-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := Open(tmpDir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	t.Run("LoadMissingMatchReturnsEmpty", func(t *testing.T) {
		record, err := store.LoadMatch("no-such-match")
		if err != nil {
			t.Fatalf("LoadMatch: %v", err)
		}
		if len(record.Moves) != 0 {
			t.Errorf("expected no moves, got %d", len(record.Moves))
		}
	})

	t.Run("AppendAndLoad", func(t *testing.T) {
		move := MoveRecord{
			Depth:   4,
			Score:   120,
			Move:    "e2e4",
			Elapsed: 250 * time.Millisecond,
			Color:   board.White,
		}
		if err := store.AppendMove("match-1", move); err != nil {
			t.Fatalf("AppendMove: %v", err)
		}

		record, err := store.LoadMatch("match-1")
		if err != nil {
			t.Fatalf("LoadMatch: %v", err)
		}
		if len(record.Moves) != 1 {
			t.Fatalf("expected 1 move, got %d", len(record.Moves))
		}
		if record.Moves[0].Move != "e2e4" {
			t.Errorf("expected move e2e4, got %s", record.Moves[0].Move)
		}
		if record.Moves[0].Recorded.IsZero() {
			t.Errorf("expected Recorded to be stamped")
		}
	})

	t.Run("AppendAccumulates", func(t *testing.T) {
		store.AppendMove("match-2", MoveRecord{Depth: 2, Move: "d2d4"})
		store.AppendMove("match-2", MoveRecord{Depth: 3, Move: "d7d5"})

		record, err := store.LoadMatch("match-2")
		if err != nil {
			t.Fatalf("LoadMatch: %v", err)
		}
		if len(record.Moves) != 2 {
			t.Fatalf("expected 2 moves, got %d", len(record.Moves))
		}
		if record.Moves[0].Move != "d2d4" || record.Moves[1].Move != "d7d5" {
			t.Errorf("moves out of order: %+v", record.Moves)
		}
	})
}

func TestRecorderFlushesLatestIteration(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "chesscore-matchstore-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := Open(tmpDir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	rec := NewRecorder(store, "match-3")
	rec.OnIteration(1, 10, board.NewMove(board.E2, board.E4), 10*time.Millisecond)
	rec.OnIteration(2, 15, board.NewMove(board.D2, board.D4), 20*time.Millisecond)

	if err := rec.Flush(board.White); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	record, err := store.LoadMatch("match-3")
	if err != nil {
		t.Fatalf("LoadMatch: %v", err)
	}
	if len(record.Moves) != 1 {
		t.Fatalf("expected 1 flushed move, got %d", len(record.Moves))
	}
	if record.Moves[0].Depth != 2 {
		t.Errorf("expected the deepest iteration (depth 2) to be flushed, got depth %d", record.Moves[0].Depth)
	}
}

func TestDefaultDir(t *testing.T) {
	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir failed: %v", err)
	}
	if dir == "" {
		t.Error("DefaultDir returned empty path")
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("data directory was not created: %s", dir)
	}
}
