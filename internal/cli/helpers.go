package cli

import (
	"log/slog"

	"github.com/mesh-intelligence/contacts/pkg/store"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// openStore returns the snapshot store for cfg. Configuration errors are
// reported as system errors since they come from config.yaml or the
// environment.
func openStore(cfg types.Config, log *slog.Logger) (types.Store, error) {
	s, err := store.Open(cfg, log)
	if err != nil {
		return nil, sysErrorf("backend %q: %w", cfg.Backend, err)
	}
	return s, nil
}
