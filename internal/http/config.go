package http

import (
	"github.com/shelfward/shelfward/internal/covers"
	"github.com/shelfward/shelfward/internal/database"
)

// RouterConfig contains all dependencies needed to create the HTTP router.
// This replaces a long parameter list in NewRouter for better
// maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database

	// Stores
	CategoriesStore CategoriesStore
	BooksStore      BooksStore
	NotesStore      NotesStore
	ChatStore       ChatStore
	SettingsStore   SettingsStore

	// Domain services
	Progress     ProgressTracker
	Importer     Importer
	Assistant    Assistant
	Subscription SubscriptionService
	Recommender  Recommender
	Speech       Speech

	// Cover caching
	CoverCache *covers.Cache

	// Application info
	Version string
}
