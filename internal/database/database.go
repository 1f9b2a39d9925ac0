// Package database owns the on-device SQLite schema: it opens the
// connection, creates the six tables, and seeds the default rows. All
// read/write access goes through the per-entity repositories in the
// subpackages, constructed from the *gorm.DB this package hands out.
package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shelfward/shelfward/internal/entities"
	"github.com/shelfward/shelfward/internal/subscription"
)

// ErrNotInitialized is returned by repositories constructed without a live
// database handle.
var ErrNotInitialized = errors.New("database not initialized")

// ReadCategoryID is the fixed id of the seeded "Read" category. Completing
// a book always moves it here.
const ReadCategoryID = "4"

var defaultCategories = []entities.Category{
	{ID: "1", Name: "Finance", Icon: "trending-up", Color: "#10B981"},
	{ID: "2", Name: "Leisure", Icon: "coffee", Color: "#F59E0B"},
	{ID: "3", Name: "Discipline", Icon: "target", Color: "#EF4444"},
	{ID: ReadCategoryID, Name: "Read", Icon: "check-circle", Color: "#6366F1"},
	{ID: "5", Name: "Favorites", Icon: "heart", Color: "#EC4899"},
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the SQLite database at dbPath, creates any missing
// tables, and seeds the default categories, the free-tier subscription, and
// the default settings. Safe to call on every startup: schema creation and
// seeding are both idempotent.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Category{},
		&entities.Book{},
		&entities.Note{},
		&entities.ChatMessage{},
		&entities.UserSubscription{},
		&entities.AppSettings{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedCategories(); err != nil {
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}
	if err := database.seedSubscription(); err != nil {
		return nil, fmt.Errorf("failed to seed subscription: %w", err)
	}
	if err := database.seedSettings(); err != nil {
		return nil, fmt.Errorf("failed to seed settings: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedCategories() error {
	for _, category := range defaultCategories {
		var existing entities.Category
		result := d.DB.Where("id = ?", category.ID).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := d.DB.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to create category %s: %w", category.Name, err)
			}
			log.Printf("Created default category: %s", category.Name)
		} else if result.Error != nil {
			return result.Error
		}
	}
	return nil
}

func (d *Database) seedSubscription() error {
	var existing entities.UserSubscription
	result := d.DB.Where("id = ?", entities.SingletonID).First(&existing)
	if result.Error == gorm.ErrRecordNotFound {
		sub := subscription.FreeSubscription()
		if err := d.DB.Create(&sub).Error; err != nil {
			return err
		}
		log.Printf("Created free-tier subscription record")
		return nil
	}
	return result.Error
}

func (d *Database) seedSettings() error {
	var existing entities.AppSettings
	result := d.DB.Where("id = ?", entities.SingletonID).First(&existing)
	if result.Error == gorm.ErrRecordNotFound {
		settings := entities.AppSettings{
			ID:       entities.SingletonID,
			TTSMode:  entities.TTSModeOffline,
			TTSVoice: entities.TTSVoiceRobotic,
			FontSize: entities.FontSizeMedium,
			Theme:    entities.ThemeLight,
			AutoSync: false,
		}
		if err := d.DB.Create(&settings).Error; err != nil {
			return err
		}
		log.Printf("Created default settings record")
		return nil
	}
	return result.Error
}
