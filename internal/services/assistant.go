package services

import (
	"context"
	"fmt"

	"github.com/shelfward/shelfward/internal/ai"
	"github.com/shelfward/shelfward/internal/entities"
	"github.com/shelfward/shelfward/internal/reader"
)

// AssistantService answers questions about a book through the AI
// collaborator. Every request is gated on the AI entitlement before the
// network is touched, and each resolved exchange is appended to the
// book's chat log.
type AssistantService struct {
	books        BookStore
	chat         ChatStore
	files        FileStore
	asker        ai.Asker
	entitlements Entitlements
}

// NewAssistantService creates the AI assistant service. asker may be nil
// when no AI backend is configured; asking then fails with a local error.
func NewAssistantService(books BookStore, chat ChatStore, files FileStore, asker ai.Asker, entitlements Entitlements) *AssistantService {
	return &AssistantService{
		books:        books,
		chat:         chat,
		files:        files,
		asker:        asker,
		entitlements: entitlements,
	}
}

// Ask sends a reader's question about a book to the AI service, using the
// text around the given page as context, and records the exchange. One
// request is outstanding at a time per invocation; the answer (or failure)
// is resolved before Ask returns.
func (s *AssistantService) Ask(ctx context.Context, bookID, question string, page *int) (*entities.ChatMessage, error) {
	if err := s.entitlements.RequireAI(); err != nil {
		return nil, err
	}
	if s.asker == nil {
		return nil, fmt.Errorf("ai service not configured")
	}

	book, err := s.books.GetBook(bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("book %s not found", bookID)
	}

	contextText, err := s.contextFor(book, page)
	if err != nil {
		return nil, err
	}

	answer, err := s.asker.Ask(ctx, question, contextText, book.Title, page)
	if err != nil {
		return nil, fmt.Errorf("ai request failed: %w", err)
	}

	message := entities.ChatMessage{
		BookID:   bookID,
		Question: question,
		Answer:   answer,
		Page:     page,
	}
	if _, err := s.chat.AppendMessage(&message); err != nil {
		return nil, fmt.Errorf("failed to record chat message: %w", err)
	}
	return &message, nil
}

// contextFor picks the excerpt sent with a question: the current page when
// one is given, otherwise the start of the book. Truncation to the wire
// bound happens in the AI client.
func (s *AssistantService) contextFor(book *entities.Book, page *int) (string, error) {
	content, err := s.files.ExtractText(book.FilePath, book.FileType)
	if err != nil {
		return "", err
	}
	if page == nil {
		return content, nil
	}
	pages := reader.Pages(content)
	if *page < 0 || *page >= len(pages) {
		return content, nil
	}
	return pages[*page], nil
}
