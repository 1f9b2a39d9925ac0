// Package books provides database operations for the book library.
//
// Genre tags and the completed/favorite flags live in encoded columns
// (JSON text and 0/1 integers); the conversion happens in the entity types
// themselves, so every method here reads and writes decoded values.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBook(id)
package books

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfward/shelfward/internal/database"
	"github.com/shelfward/shelfward/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ready() error {
	if r == nil || r.db == nil {
		return database.ErrNotInitialized
	}
	return nil
}

// ListBooks returns the whole library, most recently added first.
func (r *Repository) ListBooks() ([]entities.Book, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var books []entities.Book
	err := r.db.Order("created_at DESC").Find(&books).Error
	return books, err
}

// ListBooksByCategory returns the books shelved under a category.
func (r *Repository) ListBooksByCategory(categoryID string) ([]entities.Book, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var books []entities.Book
	err := r.db.Where("category_id = ?", categoryID).Order("created_at DESC").Find(&books).Error
	return books, err
}

// GetBook retrieves a book by id. Not-found is returned as a nil book
// rather than an error; the caller decides the fallback.
func (r *Repository) GetBook(id string) (*entities.Book, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var book entities.Book
	err := r.db.Where("id = ?", id).First(&book).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook inserts a new book and returns its generated id.
func (r *Repository) CreateBook(book *entities.Book) (string, error) {
	if err := r.ready(); err != nil {
		return "", err
	}
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if book.GenreTags == nil {
		book.GenreTags = entities.StringList{}
	}
	if book.Source == "" {
		book.Source = entities.BookSourceLocal
	}
	if err := r.db.Create(book).Error; err != nil {
		return "", fmt.Errorf("failed to create book: %w", err)
	}
	return book.ID, nil
}

// UpdateProgress records the last page read. Range checking against
// TotalPages is the reader's job, not the store's.
func (r *Repository) UpdateProgress(bookID string, page int) error {
	if err := r.ready(); err != nil {
		return err
	}
	return r.db.Model(&entities.Book{}).
		Where("id = ?", bookID).
		Update("last_page_read", page).Error
}

// UpdateCategory moves a book to another category. A nil categoryID
// removes the book from its shelf.
func (r *Repository) UpdateCategory(bookID string, categoryID *string) error {
	if err := r.ready(); err != nil {
		return err
	}
	return r.db.Model(&entities.Book{}).
		Where("id = ?", bookID).
		Update("category_id", categoryID).Error
}

// ToggleFavorite flips the favorite flag and returns the new value.
// Read and write are separate statements, so callers must serialize
// concurrent toggles of the same book themselves.
func (r *Repository) ToggleFavorite(bookID string) (bool, error) {
	if err := r.ready(); err != nil {
		return false, err
	}
	book, err := r.GetBook(bookID)
	if err != nil {
		return false, err
	}
	if book == nil {
		return false, fmt.Errorf("book %s not found", bookID)
	}
	book.IsFavorite = !book.IsFavorite
	if err := r.db.Save(book).Error; err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return book.IsFavorite.Bool(), nil
}

// MarkCompleted flags a book as finished and files it under the fixed
// "Read" category, whatever shelf it was on before.
func (r *Repository) MarkCompleted(bookID string) error {
	if err := r.ready(); err != nil {
		return err
	}
	readCategory := database.ReadCategoryID
	return r.db.Model(&entities.Book{}).
		Where("id = ?", bookID).
		Updates(map[string]interface{}{
			"is_completed": entities.BoolFlag(true),
			"category_id":  &readCategory,
		}).Error
}

// DeleteBook removes a book together with its notes and chat history.
func (r *Repository) DeleteBook(id string) error {
	if err := r.ready(); err != nil {
		return err
	}
	if err := r.db.Where("book_id = ?", id).Delete(&entities.Note{}).Error; err != nil {
		return fmt.Errorf("failed to delete notes for book: %w", err)
	}
	if err := r.db.Where("book_id = ?", id).Delete(&entities.ChatMessage{}).Error; err != nil {
		return fmt.Errorf("failed to delete chat history for book: %w", err)
	}
	return r.db.Where("id = ?", id).Delete(&entities.Book{}).Error
}
