package config

// Default paths
const (
	// DefaultDataDir holds the settings file and, by default, the database
	DefaultDataDir = "./data"

	// DefaultDatabasePath is the default path for the library database
	DefaultDatabasePath = "./data/library.db"
)
