// Package chat provides database operations for the per-book AI chat log.
//
// The log is append-only: individual messages are never edited or removed,
// only the whole history for a book can be cleared.
package chat

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfward/shelfward/internal/database"
	"github.com/shelfward/shelfward/internal/entities"
)

// MessageWithBook is a chat message joined with the title of the book it
// belongs to, for the all-conversations overview.
type MessageWithBook struct {
	entities.ChatMessage
	BookTitle string `json:"book_title"`
}

// Repository handles all chat history database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new chat repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ready() error {
	if r == nil || r.db == nil {
		return database.ErrNotInitialized
	}
	return nil
}

// ListChatForBook returns a book's chat history in chronological order.
func (r *Repository) ListChatForBook(bookID string) ([]entities.ChatMessage, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var messages []entities.ChatMessage
	err := r.db.Where("book_id = ?", bookID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// ListAllChat returns every message joined with its book title, newest first.
func (r *Repository) ListAllChat() ([]MessageWithBook, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var messages []MessageWithBook
	err := r.db.Table("chat_messages").
		Select("chat_messages.*, books.title AS book_title").
		Joins("LEFT JOIN books ON books.id = chat_messages.book_id").
		Order("chat_messages.created_at DESC").
		Scan(&messages).Error
	return messages, err
}

// AppendMessage adds one question/answer exchange to a book's log and
// returns its generated id.
func (r *Repository) AppendMessage(message *entities.ChatMessage) (string, error) {
	if err := r.ready(); err != nil {
		return "", err
	}
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if err := r.db.Create(message).Error; err != nil {
		return "", fmt.Errorf("failed to append chat message: %w", err)
	}
	return message.ID, nil
}

// ClearChatForBook deletes a book's entire chat history.
func (r *Repository) ClearChatForBook(bookID string) error {
	if err := r.ready(); err != nil {
		return err
	}
	return r.db.Where("book_id = ?", bookID).Delete(&entities.ChatMessage{}).Error
}
