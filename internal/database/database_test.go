package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfward/shelfward/internal/entities"
)

func setupDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_database_" + t.Name() + ".db"

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestNewDatabase_SeedsDefaultCategories(t *testing.T) {
	db, cleanup := setupDB(t)
	defer cleanup()

	var categories []entities.Category
	err := db.DB.Order("id").Find(&categories).Error
	require.NoError(t, err)

	require.Len(t, categories, 5)
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Finance", "Leisure", "Discipline", "Read", "Favorites"}, names)
	assert.Equal(t, ReadCategoryID, categories[3].ID)
}

func TestNewDatabase_SeedsSingletons(t *testing.T) {
	db, cleanup := setupDB(t)
	defer cleanup()

	var sub entities.UserSubscription
	err := db.DB.First(&sub, "id = ?", entities.SingletonID).Error
	require.NoError(t, err)
	assert.Equal(t, entities.TierFree, sub.Tier)
	assert.False(t, sub.HasAI.Bool())

	var settings entities.AppSettings
	err = db.DB.First(&settings, "id = ?", entities.SingletonID).Error
	require.NoError(t, err)
	assert.Equal(t, entities.TTSModeOffline, settings.TTSMode)
	assert.Equal(t, entities.ThemeLight, settings.Theme)
}

func TestNewDatabase_SeedingIsIdempotent(t *testing.T) {
	dbPath := "./test_database_idempotent.db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopen against the same file: no duplicate seeds.
	db, err = NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var categoryCount, subCount int64
	require.NoError(t, db.DB.Model(&entities.Category{}).Count(&categoryCount).Error)
	require.NoError(t, db.DB.Model(&entities.UserSubscription{}).Count(&subCount).Error)
	assert.Equal(t, int64(5), categoryCount)
	assert.Equal(t, int64(1), subCount)
}

func TestNewDatabase_SeedingPreservesModifiedRows(t *testing.T) {
	dbPath := "./test_database_preserve.db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	err = db.DB.Model(&entities.UserSubscription{}).
		Where("id = ?", entities.SingletonID).
		Update("tier", entities.TierPremium).Error
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var sub entities.UserSubscription
	require.NoError(t, db.DB.First(&sub, "id = ?", entities.SingletonID).Error)
	assert.Equal(t, entities.TierPremium, sub.Tier)
}
