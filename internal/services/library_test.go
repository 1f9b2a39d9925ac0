package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfward/shelfward/internal/database"
	"github.com/shelfward/shelfward/internal/database/books"
	"github.com/shelfward/shelfward/internal/storage"
)

func setupLibraryService(t *testing.T) (*LibraryService, *books.Repository, func()) {
	t.Helper()
	dbPath := "./test_library_" + t.Name() + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	bookRepo := books.NewRepository(db.DB)
	files, err := storage.NewClient(t.TempDir())
	require.NoError(t, err)

	svc := NewLibraryService(bookRepo, files)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return svc, bookRepo, cleanup
}

func writeSourceFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLibraryService_ImportBook(t *testing.T) {
	svc, bookRepo, cleanup := setupLibraryService(t)
	defer cleanup()

	content := strings.Repeat("invest wisely and the money compounds ", 150) // ~1050 words
	srcPath := writeSourceFile(t, "Tony Robbins - Awaken the Giant Within.txt", content)

	result, err := svc.ImportBook(srcPath, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "Awaken the Giant Within", result.Title)
	assert.Equal(t, "Tony Robbins", result.Author)
	assert.Equal(t, 3, result.TotalPages)
	assert.Contains(t, result.Genres, "finance")

	book, err := bookRepo.GetBook(result.BookID)
	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, 3, book.TotalPages)
	assert.Zero(t, book.LastPageRead)
	assert.FileExists(t, book.FilePath)
}

func TestLibraryService_ImportBook_ExplicitTitleWins(t *testing.T) {
	svc, _, cleanup := setupLibraryService(t)
	defer cleanup()

	srcPath := writeSourceFile(t, "whatever.txt", "plain words")

	result, err := svc.ImportBook(srcPath, "Chosen Title", nil)
	require.NoError(t, err)
	assert.Equal(t, "Chosen Title", result.Title)
}

func TestLibraryService_ImportBook_NonTextSinglePage(t *testing.T) {
	svc, bookRepo, cleanup := setupLibraryService(t)
	defer cleanup()

	srcPath := writeSourceFile(t, "scan.pdf", "%PDF-1.4 binary-ish bytes")

	result, err := svc.ImportBook(srcPath, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalPages)

	book, err := bookRepo.GetBook(result.BookID)
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(book.FileType))
}

func TestLibraryService_ImportBook_MissingSource(t *testing.T) {
	svc, _, cleanup := setupLibraryService(t)
	defer cleanup()

	_, err := svc.ImportBook("/nonexistent/book.txt", "", nil)
	assert.Error(t, err)
}

func TestLibraryService_PageContent(t *testing.T) {
	svc, _, cleanup := setupLibraryService(t)
	defer cleanup()

	words := make([]string, 500)
	for i := range words {
		words[i] = "w"
	}
	srcPath := writeSourceFile(t, "long.txt", strings.Join(words, " "))

	result, err := svc.ImportBook(srcPath, "", nil)
	require.NoError(t, err)

	page0, err := svc.PageContent(result.BookID, 0)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(page0), 400)

	page1, err := svc.PageContent(result.BookID, 1)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(page1), 100)

	_, err = svc.PageContent(result.BookID, 2)
	assert.Error(t, err)
}

func TestLibraryService_PageContent_MissingBook(t *testing.T) {
	svc, _, cleanup := setupLibraryService(t)
	defer cleanup()

	_, err := svc.PageContent("missing", 0)
	assert.Error(t, err)
}
