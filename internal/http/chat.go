package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelfward/shelfward/internal/database/chat"
	"github.com/shelfward/shelfward/internal/entities"
)

// ChatStore defines database operations for the assistant chat log.
type ChatStore interface {
	ListChatForBook(bookID string) ([]entities.ChatMessage, error)
	ListAllChat() ([]chat.MessageWithBook, error)
	ClearChatForBook(bookID string) error
}

// Assistant answers questions about a book and records the exchange.
type Assistant interface {
	Ask(ctx context.Context, bookID, question string, page *int) (*entities.ChatMessage, error)
}

type ChatController struct {
	store     ChatStore
	assistant Assistant
}

func NewChatController(store ChatStore, assistant Assistant) *ChatController {
	return &ChatController{store: store, assistant: assistant}
}

// ListAllChat returns the assistant history across all books.
// GET /api/chat
func (cc *ChatController) ListAllChat(c *gin.Context) {
	list, err := cc.store.ListAllChat()
	if err != nil {
		respondInternalError(c, err, "list chat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": list, "count": len(list)})
}

// ListBookChat returns the conversation for one book, oldest first.
// GET /api/books/:id/chat
func (cc *ChatController) ListBookChat(c *gin.Context) {
	list, err := cc.store.ListChatForBook(c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "list book chat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": list, "count": len(list)})
}

type askRequest struct {
	Question string `json:"question" binding:"required"`
	Page     *int   `json:"page"`
}

// Ask forwards a question about the book to the AI assistant. Requires an
// AI-capable subscription.
// POST /api/books/:id/chat
func (cc *ChatController) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "question is required")
		return
	}

	message, err := cc.assistant.Ask(c.Request.Context(), c.Param("id"), req.Question, req.Page)
	if err != nil {
		respondServiceError(c, err, "ask assistant")
		return
	}
	c.JSON(http.StatusOK, message)
}

// ClearBookChat wipes the conversation for one book.
// DELETE /api/books/:id/chat
func (cc *ChatController) ClearBookChat(c *gin.Context) {
	if err := cc.store.ClearChatForBook(c.Param("id")); err != nil {
		respondInternalError(c, err, "clear chat")
		return
	}
	respondSuccess(c, "chat cleared")
}
