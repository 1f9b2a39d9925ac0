package reader

import (
	"fmt"

	"github.com/shelfward/shelfward/internal/entities"
)

// BookStore is the slice of the books repository the progress tracker needs.
type BookStore interface {
	GetBook(id string) (*entities.Book, error)
	UpdateProgress(bookID string, page int) error
	MarkCompleted(bookID string) error
}

// Progress validates page turns and fires the one-time completion when a
// forward navigation reaches the last page.
type Progress struct {
	store BookStore
}

// NewProgress creates a progress tracker over the given store.
func NewProgress(store BookStore) *Progress {
	return &Progress{store: store}
}

// TurnTo records that the reader is now on the given 0-based page. The
// page must be in range once the book has a known page count. Reaching the
// last page marks the book completed exactly once; a book already
// completed is never re-triggered.
func (p *Progress) TurnTo(bookID string, page int) (*entities.Book, error) {
	book, err := p.store.GetBook(bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("book %s not found", bookID)
	}

	if page < 0 {
		return nil, fmt.Errorf("page %d out of range", page)
	}
	if book.TotalPages > 0 && page >= book.TotalPages {
		return nil, fmt.Errorf("page %d out of range (book has %d pages)", page, book.TotalPages)
	}

	if err := p.store.UpdateProgress(bookID, page); err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}
	book.LastPageRead = page

	if book.TotalPages > 0 && page >= book.TotalPages-1 && !book.IsCompleted.Bool() {
		if err := p.store.MarkCompleted(bookID); err != nil {
			return nil, fmt.Errorf("failed to mark book completed: %w", err)
		}
		book.IsCompleted = true
	}

	return book, nil
}
