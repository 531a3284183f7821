// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

// Application defaults
const (
	DefaultDBPath       = "mix-memory.db"
	DefaultHistoriesDir = "./rekordbox_histories"
	DefaultSnapshotFile = "./web/track_network.json"
	DefaultPort         = "8080"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// Configuration sources
const (
	EnvPrefix      = "MIXMEMORY"
	ConfigFileName = ".mixmemory"
)

// Date layout for --min-date flags and history file names
const DateLayout = "2006-01-02"
