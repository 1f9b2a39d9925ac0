package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfward/shelfward/internal/entities"
)

// fakeBookStore tracks progress calls in memory.
type fakeBookStore struct {
	book           *entities.Book
	completedCalls int
}

func (f *fakeBookStore) GetBook(id string) (*entities.Book, error) {
	if f.book == nil || f.book.ID != id {
		return nil, nil
	}
	copied := *f.book
	return &copied, nil
}

func (f *fakeBookStore) UpdateProgress(bookID string, page int) error {
	f.book.LastPageRead = page
	return nil
}

func (f *fakeBookStore) MarkCompleted(bookID string) error {
	f.completedCalls++
	f.book.IsCompleted = true
	return nil
}

func newFakeStore(totalPages int) *fakeBookStore {
	return &fakeBookStore{
		book: &entities.Book{ID: "b1", Title: "Test", TotalPages: totalPages},
	}
}

func TestProgress_TurnTo_UpdatesPage(t *testing.T) {
	store := newFakeStore(10)
	progress := NewProgress(store)

	book, err := progress.TurnTo("b1", 4)
	require.NoError(t, err)

	assert.Equal(t, 4, book.LastPageRead)
	assert.False(t, book.IsCompleted.Bool())
	assert.Zero(t, store.completedCalls)
}

func TestProgress_TurnTo_LastPageCompletesOnce(t *testing.T) {
	store := newFakeStore(10)
	progress := NewProgress(store)

	book, err := progress.TurnTo("b1", 9)
	require.NoError(t, err)
	assert.True(t, book.IsCompleted.Bool())
	assert.Equal(t, 1, store.completedCalls)

	// Revisiting the last page does not re-trigger completion.
	_, err = progress.TurnTo("b1", 9)
	require.NoError(t, err)
	assert.Equal(t, 1, store.completedCalls)
}

func TestProgress_TurnTo_OutOfRange(t *testing.T) {
	store := newFakeStore(10)
	progress := NewProgress(store)

	_, err := progress.TurnTo("b1", 10)
	assert.Error(t, err)

	_, err = progress.TurnTo("b1", -1)
	assert.Error(t, err)
}

func TestProgress_TurnTo_UnknownPageCount(t *testing.T) {
	// Books whose page count is still zero accept any non-negative page
	// and never complete.
	store := newFakeStore(0)
	progress := NewProgress(store)

	book, err := progress.TurnTo("b1", 25)
	require.NoError(t, err)
	assert.Equal(t, 25, book.LastPageRead)
	assert.Zero(t, store.completedCalls)
}

func TestProgress_TurnTo_MissingBook(t *testing.T) {
	store := newFakeStore(10)
	progress := NewProgress(store)

	_, err := progress.TurnTo("missing", 1)
	assert.Error(t, err)
}

func TestProgress_TurnTo_SinglePageBook(t *testing.T) {
	store := newFakeStore(1)
	progress := NewProgress(store)

	book, err := progress.TurnTo("b1", 0)
	require.NoError(t, err)
	assert.True(t, book.IsCompleted.Bool())
}
