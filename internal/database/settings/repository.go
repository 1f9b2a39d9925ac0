// Package settings provides database operations for the singleton app
// settings record, using the same merge-then-overwrite pattern as the
// subscription store.
package settings

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shelfward/shelfward/internal/database"
	"github.com/shelfward/shelfward/internal/entities"
)

// Update carries the fields of a partial settings update. Nil fields are
// left untouched on the stored record.
type Update struct {
	TTSMode  *entities.TTSMode
	TTSVoice *entities.TTSVoice
	FontSize *entities.FontSize
	Theme    *entities.Theme
	AutoSync *bool
}

// Repository handles the app settings singleton.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ready() error {
	if r == nil || r.db == nil {
		return database.ErrNotInitialized
	}
	return nil
}

// GetSettings returns the singleton record. Seeding guarantees its
// presence, so an absent row is a precondition violation.
func (r *Repository) GetSettings() (*entities.AppSettings, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var settings entities.AppSettings
	err := r.db.Where("id = ?", entities.SingletonID).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("settings record missing: store was not seeded")
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings merges the given fields over the current record and
// writes the whole merged record back.
func (r *Repository) UpdateSettings(update Update) (*entities.AppSettings, error) {
	settings, err := r.GetSettings()
	if err != nil {
		return nil, err
	}

	if update.TTSMode != nil {
		settings.TTSMode = *update.TTSMode
	}
	if update.TTSVoice != nil {
		settings.TTSVoice = *update.TTSVoice
	}
	if update.FontSize != nil {
		settings.FontSize = *update.FontSize
	}
	if update.Theme != nil {
		settings.Theme = *update.Theme
	}
	if update.AutoSync != nil {
		settings.AutoSync = entities.BoolFlag(*update.AutoSync)
	}

	if err := r.db.Save(settings).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}
