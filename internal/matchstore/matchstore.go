// Package matchstore provides persistent storage for completed
// search-player move choices (C9), keyed by a caller-supplied match ID.
// It never influences search or evaluation; a driver may attach it to a
// player's OnIteration callback purely as a side-channel record.
package matchstore

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/negamaxchess/chesscore/internal/board"
)

// MoveRecord is one completed choose_move call: the deepest depth the
// iterative-deepening driver finished, that depth's score, the move it
// settled on, the time it took, the player's color, and when it was
// recorded. The search core does not track nodes searched, so no node
// count is recorded.
type MoveRecord struct {
	Depth    int           `json:"depth"`
	Score    int           `json:"score"`
	Move     string        `json:"move"`
	Elapsed  time.Duration `json:"elapsed"`
	Color    board.Color   `json:"color"`
	Recorded time.Time     `json:"recorded"`
}

// MatchRecord is the full move history for one match ID.
type MatchRecord struct {
	MatchID string       `json:"match_id"`
	Moves   []MoveRecord `json:"moves"`
}

// Store wraps BadgerDB for persistent match-record storage.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the match record database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func matchKey(matchID string) []byte {
	return []byte("match:" + matchID)
}

// AppendMove records one completed choose_move call under matchID,
// appending to any moves already recorded for that match.
func (s *Store) AppendMove(matchID string, move MoveRecord) error {
	move.Recorded = time.Now()

	return s.db.Update(func(txn *badger.Txn) error {
		record := MatchRecord{MatchID: matchID}

		item, err := txn.Get(matchKey(matchID))
		if err == nil {
			if unmarshalErr := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			}); unmarshalErr != nil {
				return unmarshalErr
			}
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		record.Moves = append(record.Moves, move)

		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		return txn.Set(matchKey(matchID), data)
	})
}

// LoadMatch returns the recorded moves for matchID, or a record with no
// moves if the match has never been recorded.
func (s *Store) LoadMatch(matchID string) (MatchRecord, error) {
	record := MatchRecord{MatchID: matchID}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(matchKey(matchID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})

	return record, err
}

// Recorder builds a player.SearchPlayer-compatible OnIteration callback
// that appends the final (deepest completed) iteration of each
// choose_move call to matchID. It ignores all but the most recent call
// it sees; the facade is expected to invoke it once per depth and the
// caller keeps only the last value it received before the move returns.
type Recorder struct {
	store   *Store
	matchID string
	latest  MoveRecord
}

// NewRecorder builds a recorder that appends to matchID in store.
func NewRecorder(store *Store, matchID string) *Recorder {
	return &Recorder{store: store, matchID: matchID}
}

// OnIteration is designed to be assigned directly to a
// player.SearchPlayer's OnIteration field.
func (r *Recorder) OnIteration(depth int, score int, move board.Move, elapsed time.Duration) {
	r.latest = MoveRecord{
		Depth:   depth,
		Score:   score,
		Move:    move.String(),
		Elapsed: elapsed,
	}
}

// Flush persists the deepest iteration observed since the last Flush.
// A driver calls this once ChooseMove returns.
func (r *Recorder) Flush(color board.Color) error {
	if r.latest.Move == "" {
		return nil
	}
	r.latest.Color = color
	if err := r.store.AppendMove(r.matchID, r.latest); err != nil {
		return err
	}
	r.latest = MoveRecord{}
	return nil
}
