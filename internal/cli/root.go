// Package cli implements the contacts command-line interface: global flags,
// configuration loading, and the interactive session that runs by default.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/logger"
	"github.com/mesh-intelligence/contacts/internal/shell"
	"github.com/mesh-intelligence/contacts/pkg/contacts"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// now is the session clock; tests replace it.
var now = time.Now

// rootFlags holds global flag values shared by all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	debug     bool
}

// sysError marks failures of the environment (files, database) rather than
// of the user's invocation.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func sysErrorf(format string, args ...any) error {
	return &sysError{err: fmt.Errorf(format, args...)}
}

// NewRootCmd creates the top-level "contacts" command. Without a subcommand
// it loads the snapshot, runs the interactive session, and saves on exit.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:     "contacts",
		Short:   "A personal contact directory with birthday reminders",
		Long:    "contacts stores names, phone numbers, and birthdays, and lists birthdays\ncoming up in the next seven days. Run without arguments for an interactive session.",
		Version: contacts.Version,
		Args:    cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, f)
		},
	}

	root.PersistentFlags().StringVar(&f.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&f.dataDir, "data-dir", "", "data directory (default: .contacts-db)")
	root.PersistentFlags().BoolVar(&f.debug, "debug", false, "write debug records to the session log")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(f))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "contacts:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

func exitCode(err error) int {
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// runSession loads the directory, hands it to the shell, and saves it once
// the shell returns.
func runSession(cmd *cobra.Command, f *rootFlags) error {
	s, err := resolveSettings(f)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.Setup(logger.Config{Dir: s.store.DataDir, Debug: f.debug})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: session log disabled:", err)
	}
	defer closeLog()

	store, err := openStore(s.store, log)
	if err != nil {
		return err
	}

	dir, err := store.Load()
	if err != nil {
		return sysErrorf("load snapshot: %w", err)
	}
	log.Info("session.start", "backend", s.store.Backend, "contacts", dir.Len())

	sh := shell.New(dir, cmd.InOrStdin(), cmd.OutOrStdout(),
		shell.WithLogger(log),
		shell.WithClock(now),
	)
	runErr := sh.Run()

	// Commands that completed before a read failure are still saved.
	if err := store.Save(dir); err != nil {
		return sysErrorf("save snapshot: %w", errors.Join(err, runErr))
	}
	if runErr != nil {
		return sysErrorf("session: %w", runErr)
	}
	return nil
}
