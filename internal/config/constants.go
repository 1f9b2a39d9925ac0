package config

// Default filesystem locations.
const (
	// DefaultDatabasePath is the default path for the application database.
	DefaultDatabasePath = "./shelfward.db"

	// DefaultLibraryDir is where imported book files are stored.
	DefaultLibraryDir = "./library"
)
