// Package services orchestrates the collaborators around the store: the
// library import flow and the entitlement-gated AI assistant.
package services

import (
	"fmt"
	"log"

	"github.com/shelfward/shelfward/internal/entities"
	"github.com/shelfward/shelfward/internal/metadata"
	"github.com/shelfward/shelfward/internal/reader"
	"github.com/shelfward/shelfward/internal/storage"
)

// genreExcerptChars is how much of the content feeds genre inference.
const genreExcerptChars = 1000

// LibraryService turns a picked file into a library book: copy it into the
// library directory, extract its text, paginate, and infer metadata from
// the filename and content.
type LibraryService struct {
	books BookStore
	files FileStore
}

// NewLibraryService creates a library import service.
func NewLibraryService(books BookStore, files FileStore) *LibraryService {
	return &LibraryService{books: books, files: files}
}

// ImportBook imports the file at srcPath. The title falls back to the
// filename when the caller does not supply one; author and genres are
// inferred. categoryID may be nil for an unshelved book.
func (s *LibraryService) ImportBook(srcPath, title string, categoryID *string) (*ImportResult, error) {
	libraryPath, err := s.files.ImportFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to import file: %w", err)
	}

	fileType := storage.FileTypeFromPath(libraryPath)
	content, err := s.files.ExtractText(libraryPath, fileType)
	if err != nil {
		return nil, err
	}

	derivedTitle, author := metadata.SplitFilename(srcPath)
	if title == "" {
		title = derivedTitle
	}

	excerpt := content
	if len(excerpt) > genreExcerptChars {
		excerpt = excerpt[:genreExcerptChars]
	}
	genres := metadata.InferGenres(title, excerpt)
	totalPages := reader.PageCount(content)

	book := entities.Book{
		Title:      title,
		Author:     author,
		FilePath:   libraryPath,
		FileType:   fileType,
		TotalPages: totalPages,
		CategoryID: categoryID,
		GenreTags:  entities.StringList(genres),
		Source:     entities.BookSourceLocal,
	}
	bookID, err := s.books.CreateBook(&book)
	if err != nil {
		return nil, err
	}

	log.Printf("Imported book %q (%d pages, genres %v)", title, totalPages, genres)

	return &ImportResult{
		BookID:     bookID,
		Title:      title,
		Author:     author,
		TotalPages: totalPages,
		Genres:     genres,
	}, nil
}

// PageContent returns one page of a book's text for rendering.
func (s *LibraryService) PageContent(bookID string, page int) (string, error) {
	book, err := s.books.GetBook(bookID)
	if err != nil {
		return "", err
	}
	if book == nil {
		return "", fmt.Errorf("book %s not found", bookID)
	}

	content, err := s.files.ExtractText(book.FilePath, book.FileType)
	if err != nil {
		return "", err
	}
	return reader.PageAt(reader.Pages(content), page)
}
