// Package shell is the interactive command layer. It reads one line at a
// time, splits it into a command name and arguments, dispatches to a
// handler operating on the Directory, and turns classified failures into
// the sentence shown to the user. The Directory is only mutated here; the
// caller saves it after Run returns.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mesh-intelligence/contacts/internal/logger"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Fixed session text.
const (
	Welcome = "Welcome to the assistant bot!"
	Prompt  = "Enter a command: "
	Goodbye = "Good bye!"

	invalidCommand = "Invalid command."
)

// Shell runs a read-dispatch-print loop over a single Directory.
type Shell struct {
	dir *types.Directory
	in  io.Reader
	out io.Writer
	log *slog.Logger
	now func() time.Time
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) { s.log = logger.OrDiscard(l) }
}

// WithClock sets the clock used by the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(s *Shell) { s.now = now }
}

// New returns a Shell reading commands from in and writing replies to out.
func New(dir *types.Directory, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		dir: dir,
		in:  in,
		out: out,
		log: logger.Discard(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run prints the welcome line and processes commands until close, exit, or
// end of input. Lines may be of any length. It returns an error only when
// reading input fails; commands already executed keep their effect.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, Welcome)

	r := bufio.NewReader(s.in)
	for {
		fmt.Fprint(s.out, Prompt)
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		if err != nil && line == "" {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, Goodbye)
			s.log.Info("session.end", "reason", "eof")
			return nil
		}

		if _, _, ok := ParseInput(line); !ok {
			continue
		}
		reply, exit := s.Execute(line)
		fmt.Fprintln(s.out, reply)
		if exit {
			s.log.Info("session.end", "reason", "exit")
			return nil
		}
	}
}

// Execute handles one input line and returns the reply text and whether the
// session should end. Blank lines produce no reply.
func (s *Shell) Execute(line string) (string, bool) {
	name, args, ok := ParseInput(line)
	if !ok {
		return "", false
	}

	switch name {
	case "close", "exit":
		return Goodbye, true
	}

	cmd, ok := commands[name]
	if !ok {
		s.log.Debug("command.unknown", "command", name)
		return invalidCommand, false
	}

	s.log.Debug("command.dispatch", "command", name, "args", len(args))
	reply, err := cmd.run(s, args)
	if err != nil {
		s.log.Debug("command.failed", "command", name, "kind", string(types.KindOf(err)), "error", err)
		return ErrorText(err), false
	}
	return reply, false
}

// ParseInput splits line on whitespace and lower-cases the command name.
// It reports false for a blank line.
func ParseInput(line string) (string, []string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// errorText maps each failure kind to the sentence shown to the user.
var errorText = map[types.Kind]func(e *types.Error) string{
	types.KindNotFound: func(*types.Error) string {
		return types.ErrContactNotFound.Msg
	},
	types.KindInvalidFormat: func(e *types.Error) string {
		return e.Msg
	},
	types.KindWrongArgumentCount: func(e *types.Error) string {
		return "Invalid command. Usage: " + e.Msg
	},
}

// ErrorText translates err into user-facing text. Unclassified errors are
// shown verbatim.
func ErrorText(err error) string {
	var e *types.Error
	if errors.As(err, &e) {
		if text, ok := errorText[e.Kind]; ok {
			return text(e)
		}
	}
	return err.Error()
}
