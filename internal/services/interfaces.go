package services

import (
	"github.com/shelfward/shelfward/internal/entities"
)

// BookStore is the slice of the books repository the services need.
type BookStore interface {
	GetBook(id string) (*entities.Book, error)
	CreateBook(book *entities.Book) (string, error)
}

// ChatStore appends to the per-book AI chat log.
type ChatStore interface {
	AppendMessage(message *entities.ChatMessage) (string, error)
}

// FileStore is the file-access collaborator.
type FileStore interface {
	ImportFile(srcPath string) (string, error)
	ExtractText(path string, fileType entities.FileType) (string, error)
}

// Entitlements answers the gating questions the services ask.
type Entitlements interface {
	RequireAI() error
}

// ImportResult describes a finished library import.
type ImportResult struct {
	BookID     string   `json:"book_id"`
	Title      string   `json:"title"`
	Author     string   `json:"author,omitempty"`
	TotalPages int      `json:"total_pages"`
	Genres     []string `json:"genres"`
}
