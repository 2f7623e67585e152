package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage keys. These form the persisted-state contract: values are
// JSON-serialized and keyed by the same identifiers the original web
// client used, so an export/import of either store round-trips.
const (
	KeyXP          = "cosmus-xp"          // int
	KeyBadges      = "cosmus-badges"      // []string of badge ids
	KeyFavorites   = "cosmus-favorites"   // []string of body ids
	KeyCompleted   = "cosmus-completed"   // []string of body ids
	KeyPerformance = "cosmus-performance" // []performance.Record
	KeySession     = "cosmus-session"     // auth session (written by the auth collaborator)
	KeyTheme       = "cosmus-theme"       // settings (out of scope here)
	KeyReminder    = "cosmus-reminder"    // settings (out of scope here)
	KeyLLMStats    = "cosmus-llm-stats"   // llm.UsageStats
)

// Store is a durable string-key → JSON-value store.
//
// Get decodes the stored value into v and reports whether the key was
// present. Put serializes v and persists it before returning; every
// mutation is durable by the time the call completes.
type Store interface {
	Get(key string, v any) (bool, error)
	Put(key string, v any) error
	Delete(key string) error
	Close() error
}

// DefaultDBPath resolves the database file path in priority order:
// 1. COSMUS_DB environment variable
// 2. $XDG_DATA_HOME/cosmus/cosmus.db
// 3. ~/.local/share/cosmus/cosmus.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("COSMUS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "cosmus", "cosmus.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
