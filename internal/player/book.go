package player

import (
	"log"

	"github.com/negamaxchess/chesscore/internal/book"
)

// loadBook loads a polyglot book, logging and returning nil on any
// failure so the caller proceeds as if no book move existed (C7's
// configuration-error policy: logged and swallowed).
func loadBook(path string) *book.Book {
	b, err := book.LoadPolyglot(path)
	if err != nil {
		log.Printf("opening book load failed, proceeding without a book: %v", err)
		return nil
	}
	return b
}
