package kvstore

import (
	"errors"
	"strings"
)

const (
	EngineSQLite = "sqlite"
	EngineJSON   = "json"
)

// NewByEngine opens a Store with the named engine. The empty engine
// defaults to SQLite.
func NewByEngine(engine, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSQLite:
		return OpenSQLite(path)
	case EngineJSON:
		return OpenJSON(path)
	default:
		return nil, errors.New("unsupported store engine: " + engine)
	}
}
