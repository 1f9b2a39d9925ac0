// Package categories provides database operations for shelf categories.
package categories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfward/shelfward/internal/database"
	"github.com/shelfward/shelfward/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ready() error {
	if r == nil || r.db == nil {
		return database.ErrNotInitialized
	}
	return nil
}

// ListCategories returns all categories ordered by name.
func (r *Repository) ListCategories() ([]entities.Category, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var categories []entities.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// GetCategory retrieves a category by id. Not-found is returned as a nil
// category rather than an error.
func (r *Repository) GetCategory(id string) (*entities.Category, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var category entities.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory inserts a new category and returns its generated id.
func (r *Repository) CreateCategory(name, icon, color string) (string, error) {
	if err := r.ready(); err != nil {
		return "", err
	}
	category := entities.Category{
		ID:    uuid.NewString(),
		Name:  name,
		Icon:  icon,
		Color: color,
	}
	if err := r.db.Create(&category).Error; err != nil {
		return "", fmt.Errorf("failed to create category: %w", err)
	}
	return category.ID, nil
}

// DeleteCategory removes a category. Books still referencing it keep
// existing with their category cleared.
func (r *Repository) DeleteCategory(id string) error {
	if err := r.ready(); err != nil {
		return err
	}
	err := r.db.Model(&entities.Book{}).
		Where("category_id = ?", id).
		Update("category_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to detach books from category: %w", err)
	}
	return r.db.Where("id = ?", id).Delete(&entities.Category{}).Error
}
