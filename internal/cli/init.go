package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/logger"
	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newInitCmd(f *rootFlags) *cobra.Command {
	var (
		backend string
		user    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and an empty snapshot",
		Long: `Create the configuration directory with config.yaml and the data directory
with an empty snapshot. An existing config.yaml or snapshot is left
untouched.

With --user the data directory is the platform data directory
(for example ~/.local/share/contacts) and is recorded in config.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, f, backend, user)
		},
	}
	cmd.Flags().StringVar(&backend, "backend", types.BackendJSONL, "snapshot backend: jsonl or sqlite")
	cmd.Flags().BoolVar(&user, "user", false, "store data in the platform data directory")
	return cmd
}

func runInit(cmd *cobra.Command, f *rootFlags, backend string, user bool) error {
	if err := (types.Config{Backend: backend}).Validate(); err != nil {
		return fmt.Errorf("backend %q: %w", backend, err)
	}

	configDir, err := paths.ResolveConfigDir(f.configDir)
	if err != nil {
		return sysErrorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysErrorf("create config directory: %w", err)
	}

	cfg := configFile{Backend: backend, DataDir: f.dataDir}
	if user && cfg.DataDir == "" {
		if cfg.DataDir, err = paths.DefaultDataDir(); err != nil {
			return sysErrorf("resolve user data dir: %w", err)
		}
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), cfg); err != nil {
		return sysErrorf("write config: %w", err)
	}

	s, err := resolveSettings(f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.store.DataDir, 0o755); err != nil {
		return sysErrorf("create data directory: %w", err)
	}

	store, err := openStore(s.store, logger.Discard())
	if err != nil {
		return err
	}
	_, err = os.Stat(store.Path())
	switch {
	case err == nil:
		fmt.Fprintf(cmd.OutOrStdout(), "Existing snapshot kept at %s\n", store.Path())
	case errors.Is(err, fs.ErrNotExist):
		if err := store.Save(types.NewDirectory()); err != nil {
			return sysErrorf("write snapshot: %w", err)
		}
	default:
		return sysErrorf("stat snapshot: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Contacts initialized (%s backend, data in %s)\n", s.store.Backend, s.store.DataDir)
	return nil
}
