// Package subscriptions provides database operations for the singleton
// subscription record.
//
// Partial updates use the merge-then-overwrite pattern: the current record
// is read, the provided fields are applied over it in memory, and the whole
// merged record is written back. Safe only under the app's single-caller
// discipline; concurrent writers can lose updates.
package subscriptions

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shelfward/shelfward/internal/database"
	"github.com/shelfward/shelfward/internal/entities"
)

// Update carries the fields of a partial subscription update. Nil fields
// are left untouched on the stored record. ClearExpiresAt removes the
// expiry regardless of the ExpiresAt field.
type Update struct {
	Tier           *entities.Tier
	Price          *float64
	Features       []string
	BooksPerMonth  *int
	HasAI          *bool
	HasNaturalTTS  *bool
	ExpiresAt      *time.Time
	ClearExpiresAt bool
}

// Repository handles the subscription singleton.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new subscriptions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ready() error {
	if r == nil || r.db == nil {
		return database.ErrNotInitialized
	}
	return nil
}

// GetSubscription returns the singleton record. Seeding guarantees its
// presence, so an absent row is a precondition violation, not a not-found.
func (r *Repository) GetSubscription() (*entities.UserSubscription, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var sub entities.UserSubscription
	err := r.db.Where("id = ?", entities.SingletonID).First(&sub).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("subscription record missing: store was not seeded")
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubscription merges the given fields over the current record and
// writes the whole merged record back.
func (r *Repository) UpdateSubscription(update Update) (*entities.UserSubscription, error) {
	sub, err := r.GetSubscription()
	if err != nil {
		return nil, err
	}

	if update.Tier != nil {
		sub.Tier = *update.Tier
	}
	if update.Price != nil {
		sub.Price = *update.Price
	}
	if update.Features != nil {
		sub.Features = entities.StringList(update.Features)
	}
	if update.BooksPerMonth != nil {
		sub.BooksPerMonth = *update.BooksPerMonth
	}
	if update.HasAI != nil {
		sub.HasAI = entities.BoolFlag(*update.HasAI)
	}
	if update.HasNaturalTTS != nil {
		sub.HasNaturalTTS = entities.BoolFlag(*update.HasNaturalTTS)
	}
	if update.ClearExpiresAt {
		sub.ExpiresAt = nil
	} else if update.ExpiresAt != nil {
		sub.ExpiresAt = update.ExpiresAt
	}

	if err := r.db.Save(sub).Error; err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	return sub, nil
}

// ReplaceSubscription overwrites the singleton with a complete record.
// Used by upgrade and cancel, which never patch individual fields.
func (r *Repository) ReplaceSubscription(sub entities.UserSubscription) error {
	if err := r.ready(); err != nil {
		return err
	}
	sub.ID = entities.SingletonID
	return r.db.Save(&sub).Error
}
