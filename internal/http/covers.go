package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelfward/shelfward/internal/covers"
)

// CoversController handles book cover requests.
type CoversController struct {
	cache *covers.Cache
	store BooksStore
}

// NewCoversController creates a new CoversController.
func NewCoversController(cache *covers.Cache, store BooksStore) *CoversController {
	return &CoversController{
		cache: cache,
		store: store,
	}
}

// GetCover serves a cached book cover image.
// GET /api/books/:id/cover
func (cc *CoversController) GetCover(c *gin.Context) {
	book, err := cc.store.GetBook(c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "get book cover")
		return
	}
	if book == nil || book.CoverImage == "" {
		c.Status(http.StatusNotFound)
		return
	}

	// Get cached cover (will fetch if not cached)
	cachePath, err := cc.cache.GetCover(book.ID, book.CoverImage)
	if err != nil || cachePath == "" {
		// Fallback: redirect to original URL
		c.Redirect(http.StatusTemporaryRedirect, book.CoverImage)
		return
	}

	c.File(cachePath)
}
