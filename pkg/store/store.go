// Package store is the public factory for snapshot stores. It selects the
// backend named in a Config while keeping the implementations internal.
package store

import (
	"log/slog"

	"github.com/mesh-intelligence/contacts/internal/jsonl"
	"github.com/mesh-intelligence/contacts/internal/sqlite"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Open validates cfg and returns the Store for its backend. A nil logger
// discards.
//
// Example:
//
//	s, err := store.Open(types.Config{
//	    Backend: types.BackendJSONL,
//	    DataDir: ".contacts-db",
//	}, nil)
//	dir, err := s.Load()
//	// ... mutate dir ...
//	err = s.Save(dir)
func Open(cfg types.Config, log *slog.Logger) (types.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case types.BackendSQLite:
		return sqlite.NewStore(cfg.DataDir, log), nil
	default:
		return jsonl.NewStore(cfg.DataDir, log), nil
	}
}
