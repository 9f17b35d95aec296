package player

import (
	"log"

	"github.com/negamaxchess/chesscore/internal/tablebase"
)

// loadTablebase builds the prober for path. No on-disk tablebase format
// is implemented yet, so this always yields a NoopProber; a non-empty
// path is logged rather than silently dropped so misconfiguration is
// visible.
func loadTablebase(path string) tablebase.Prober {
	if path != "" {
		log.Printf("tablebase probing not implemented, ignoring tablebase path %q", path)
	}
	return tablebase.NoopProber{}
}
