package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelfward/shelfward/internal/entities"
)

// CategoriesStore defines database operations for category management.
type CategoriesStore interface {
	ListCategories() ([]entities.Category, error)
	CreateCategory(name, icon, color string) (string, error)
	DeleteCategory(id string) error
}

type CategoriesController struct {
	store CategoriesStore
}

func NewCategoriesController(store CategoriesStore) *CategoriesController {
	return &CategoriesController{store: store}
}

// ListCategories returns all categories ordered by name.
// GET /api/categories
func (cc *CategoriesController) ListCategories(c *gin.Context) {
	categories, err := cc.store.ListCategories()
	if err != nil {
		respondInternalError(c, err, "list categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories, "count": len(categories)})
}

type createCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CreateCategory adds a new category.
// POST /api/categories
func (cc *CategoriesController) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	id, err := cc.store.CreateCategory(req.Name, req.Icon, req.Color)
	if err != nil {
		respondInternalError(c, err, "create category")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteCategory removes a category; books on that shelf become unshelved.
// DELETE /api/categories/:id
func (cc *CategoriesController) DeleteCategory(c *gin.Context) {
	if err := cc.store.DeleteCategory(c.Param("id")); err != nil {
		respondInternalError(c, err, "delete category")
		return
	}
	respondSuccess(c, "category deleted")
}
