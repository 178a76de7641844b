package jsonl

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/contacts/internal/logger"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// FileName is the snapshot file inside the data directory.
const FileName = "contacts.jsonl"

// ErrUnsupportedSnapshot is returned when the header names another format or
// a version this build cannot read.
var ErrUnsupportedSnapshot = errors.New("unsupported snapshot")

// Compile-time interface check.
var _ types.Store = (*Store)(nil)

// Store reads and writes a Directory snapshot as contacts.jsonl.
type Store struct {
	path string
	log  *slog.Logger
}

// NewStore returns a Store rooted at dataDir. A nil logger discards.
func NewStore(dataDir string, log *slog.Logger) *Store {
	return &Store{
		path: filepath.Join(dataDir, FileName),
		log:  logger.OrDiscard(log),
	}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the snapshot. A missing or empty file yields an empty
// Directory. Contact lines that fail validation are skipped and logged.
func (s *Store) Load() (*types.Directory, error) {
	dir := types.NewDirectory()

	records, err := readJSONL(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Info("snapshot.absent", "path", s.path)
			return dir, nil
		}
		return nil, err
	}
	if len(records) == 0 {
		return dir, nil
	}

	var hdr headerJSON
	if err := json.Unmarshal(records[0], &hdr); err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}
	if hdr.Format != formatName || hdr.Version != types.SnapshotVersion {
		return nil, fmt.Errorf("%w: format %q version %d", ErrUnsupportedSnapshot, hdr.Format, hdr.Version)
	}

	for i, raw := range records[1:] {
		var c contactJSON
		if err := json.Unmarshal(raw, &c); err != nil {
			s.log.Warn("snapshot.skip", "line", i+2, "error", err)
			continue
		}
		rec, err := s.hydrateRecord(c)
		if err != nil {
			s.log.Warn("snapshot.skip", "line", i+2, "name", c.Name, "error", err)
			continue
		}
		dir.Add(rec)
	}

	s.log.Info("snapshot.loaded", "path", s.path, "contacts", dir.Len())
	return dir, nil
}

// Save writes the full directory, replacing any previous snapshot.
func (s *Store) Save(dir *types.Directory) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	hdr, err := json.Marshal(headerJSON{Format: formatName, Version: types.SnapshotVersion})
	if err != nil {
		return fmt.Errorf("marshaling header: %w", err)
	}
	records := []json.RawMessage{hdr}

	for _, rec := range dir.All() {
		line, err := json.Marshal(dehydrateRecord(rec))
		if err != nil {
			return fmt.Errorf("marshaling contact %q: %w", rec.Name(), err)
		}
		records = append(records, line)
	}

	if err := writeJSONL(s.path, records); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	s.log.Info("snapshot.saved", "path", s.path, "contacts", dir.Len())
	return nil
}

// hydrateRecord rebuilds a Record from its stored form. Invalid phones and
// an invalid birthday are dropped individually; only an empty name rejects
// the whole contact.
func (s *Store) hydrateRecord(c contactJSON) (*types.Record, error) {
	if c.Name == "" {
		return nil, errors.New("empty name")
	}
	rec := types.NewRecord(c.Name)
	for _, p := range c.Phones {
		if err := rec.AddPhone(p); err != nil {
			s.log.Warn("snapshot.skip_phone", "name", c.Name, "error", err)
		}
	}
	if c.Birthday != nil {
		if err := rec.SetBirthday(*c.Birthday); err != nil {
			s.log.Warn("snapshot.skip_birthday", "name", c.Name, "error", err)
		}
	}
	return rec, nil
}

func dehydrateRecord(rec *types.Record) contactJSON {
	c := contactJSON{
		Name:   rec.Name(),
		Phones: rec.PhoneValues(),
	}
	if b, ok := rec.Birthday(); ok {
		s := b.String()
		c.Birthday = &s
	}
	return c
}
