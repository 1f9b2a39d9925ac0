package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelfward/shelfward/internal/entities"
	"github.com/shelfward/shelfward/internal/services"
)

// BooksStore defines database operations for library management.
type BooksStore interface {
	ListBooks() ([]entities.Book, error)
	ListBooksByCategory(categoryID string) ([]entities.Book, error)
	GetBook(id string) (*entities.Book, error)
	UpdateCategory(bookID string, categoryID *string) error
	ToggleFavorite(bookID string) (bool, error)
	MarkCompleted(bookID string) error
	DeleteBook(id string) error
}

// ProgressTracker validates page turns and handles completion.
type ProgressTracker interface {
	TurnTo(bookID string, page int) (*entities.Book, error)
}

// Importer runs the library import flow.
type Importer interface {
	ImportBook(srcPath, title string, categoryID *string) (*services.ImportResult, error)
	PageContent(bookID string, page int) (string, error)
}

type BooksController struct {
	store    BooksStore
	progress ProgressTracker
	importer Importer
}

func NewBooksController(store BooksStore, progress ProgressTracker, importer Importer) *BooksController {
	return &BooksController{store: store, progress: progress, importer: importer}
}

// ListBooks returns the whole library, optionally filtered by category.
// GET /api/books?category_id=...
func (bc *BooksController) ListBooks(c *gin.Context) {
	var (
		books []entities.Book
		err   error
	)
	if categoryID := c.Query("category_id"); categoryID != "" {
		books, err = bc.store.ListBooksByCategory(categoryID)
	} else {
		books, err = bc.store.ListBooks()
	}
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// GetBook returns a single book.
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	book, err := bc.store.GetBook(c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}
	c.JSON(http.StatusOK, book)
}

type importBookRequest struct {
	Path       string  `json:"path" binding:"required"`
	Title      string  `json:"title"`
	CategoryID *string `json:"category_id"`
}

// ImportBook copies a picked file into the library and creates the book.
// POST /api/books/import
func (bc *BooksController) ImportBook(c *gin.Context) {
	var req importBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "path is required")
		return
	}

	result, err := bc.importer.ImportBook(req.Path, req.Title, req.CategoryID)
	if err != nil {
		respondInternalError(c, err, "import book")
		return
	}
	c.JSON(http.StatusCreated, result)
}

type progressRequest struct {
	Page *int `json:"page" binding:"required"`
}

// UpdateProgress records the page the reader is on; reaching the last page
// completes the book.
// PUT /api/books/:id/progress
func (bc *BooksController) UpdateProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "page is required")
		return
	}

	book, err := bc.progress.TurnTo(c.Param("id"), *req.Page)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, book)
}

// GetPage returns one page of the book's text.
// GET /api/books/:id/pages/:page
func (bc *BooksController) GetPage(c *gin.Context) {
	page, ok := parseIntParam(c, "page")
	if !ok {
		return
	}
	content, err := bc.importer.PageContent(c.Param("id"), page)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page, "content": content})
}

type updateCategoryRequest struct {
	CategoryID *string `json:"category_id"`
}

// UpdateCategory moves a book to another shelf (or off any shelf).
// PUT /api/books/:id/category
func (bc *BooksController) UpdateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := bc.store.UpdateCategory(c.Param("id"), req.CategoryID); err != nil {
		respondInternalError(c, err, "update book category")
		return
	}
	respondSuccess(c, "category updated")
}

// ToggleFavorite flips the favorite flag.
// POST /api/books/:id/favorite
func (bc *BooksController) ToggleFavorite(c *gin.Context) {
	favorite, err := bc.store.ToggleFavorite(c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "toggle favorite")
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": favorite})
}

// MarkCompleted flags the book as finished and files it under Read.
// POST /api/books/:id/complete
func (bc *BooksController) MarkCompleted(c *gin.Context) {
	if err := bc.store.MarkCompleted(c.Param("id")); err != nil {
		respondInternalError(c, err, "mark completed")
		return
	}
	respondSuccess(c, "book completed")
}

// DeleteBook removes a book and its notes and chat history.
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	if err := bc.store.DeleteBook(c.Param("id")); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	respondSuccess(c, "book deleted")
}
