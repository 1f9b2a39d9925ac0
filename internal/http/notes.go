package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelfward/shelfward/internal/database/notes"
	"github.com/shelfward/shelfward/internal/entities"
)

// NotesStore defines database operations for reading notes.
type NotesStore interface {
	ListNotesForBook(bookID string) ([]entities.Note, error)
	ListAllNotes() ([]notes.NoteWithBook, error)
	CreateNote(note *entities.Note) (string, error)
	DeleteNote(id string) error
}

type NotesController struct {
	store NotesStore
}

func NewNotesController(store NotesStore) *NotesController {
	return &NotesController{store: store}
}

// ListAllNotes returns every note across the library, newest first.
// GET /api/notes
func (nc *NotesController) ListAllNotes(c *gin.Context) {
	list, err := nc.store.ListAllNotes()
	if err != nil {
		respondInternalError(c, err, "list notes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": list, "count": len(list)})
}

// ListBookNotes returns the notes for one book in page order.
// GET /api/books/:id/notes
func (nc *NotesController) ListBookNotes(c *gin.Context) {
	list, err := nc.store.ListNotesForBook(c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "list book notes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": list, "count": len(list)})
}

type createNoteRequest struct {
	Content string `json:"content" binding:"required"`
	Page    int    `json:"page"`
}

// CreateNote attaches a note to a book page.
// POST /api/books/:id/notes
func (nc *NotesController) CreateNote(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "content is required")
		return
	}

	id, err := nc.store.CreateNote(&entities.Note{
		BookID:  c.Param("id"),
		Content: req.Content,
		Page:    req.Page,
	})
	if err != nil {
		respondInternalError(c, err, "create note")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteNote removes a single note.
// DELETE /api/notes/:id
func (nc *NotesController) DeleteNote(c *gin.Context) {
	if err := nc.store.DeleteNote(c.Param("id")); err != nil {
		respondInternalError(c, err, "delete note")
		return
	}
	respondSuccess(c, "note deleted")
}
