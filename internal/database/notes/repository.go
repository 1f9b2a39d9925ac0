// Package notes provides database operations for reading notes.
//
// Notes are created while reading and deleted explicitly; the system never
// edits a note's content in place.
package notes

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfward/shelfward/internal/database"
	"github.com/shelfward/shelfward/internal/entities"
)

// NoteWithBook is a note joined with the title of the book it belongs to,
// for the all-notes overview.
type NoteWithBook struct {
	entities.Note
	BookTitle string `json:"book_title"`
}

// Repository handles all note database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new notes repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ready() error {
	if r == nil || r.db == nil {
		return database.ErrNotInitialized
	}
	return nil
}

// ListNotesForBook returns a book's notes in reading order: by page, then
// by creation time within a page.
func (r *Repository) ListNotesForBook(bookID string) ([]entities.Note, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var notes []entities.Note
	err := r.db.Where("book_id = ?", bookID).
		Order("page ASC, created_at ASC").
		Find(&notes).Error
	return notes, err
}

// ListAllNotes returns every note joined with its book title, newest first.
func (r *Repository) ListAllNotes() ([]NoteWithBook, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var notes []NoteWithBook
	err := r.db.Table("notes").
		Select("notes.*, books.title AS book_title").
		Joins("LEFT JOIN books ON books.id = notes.book_id").
		Order("notes.created_at DESC").
		Scan(&notes).Error
	return notes, err
}

// CreateNote inserts a new note and returns its generated id.
func (r *Repository) CreateNote(note *entities.Note) (string, error) {
	if err := r.ready(); err != nil {
		return "", err
	}
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	if err := r.db.Create(note).Error; err != nil {
		return "", fmt.Errorf("failed to create note: %w", err)
	}
	return note.ID, nil
}

// DeleteNote removes a note by id.
func (r *Repository) DeleteNote(id string) error {
	if err := r.ready(); err != nil {
		return err
	}
	return r.db.Where("id = ?", id).Delete(&entities.Note{}).Error
}
