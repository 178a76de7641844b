package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/contacts/internal/logger"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// FileName is the database file inside the data directory.
const FileName = "contacts.db"

// ErrUnsupportedSnapshot is returned when the stored version is newer than
// this build understands.
var ErrUnsupportedSnapshot = errors.New("unsupported snapshot")

// Compile-time interface check.
var _ types.Store = (*Store)(nil)

// Store keeps a Directory snapshot in a SQLite database. Each Load and Save
// opens and closes its own connection.
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

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// open connects to the database and applies the schema.
func (s *Store) open() (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}
	return db, nil
}

// Load reads the snapshot. A missing database yields an empty Directory.
func (s *Store) Load() (*types.Directory, error) {
	dir := types.NewDirectory()

	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		s.log.Info("snapshot.absent", "path", s.path)
		return dir, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var version int
	err = db.QueryRow("SELECT version FROM snapshot_meta WHERE id = 1").Scan(&version)
	if err == sql.ErrNoRows {
		return dir, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot version: %w", err)
	}
	if version != types.SnapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedSnapshot, version)
	}

	rows, err := db.Query("SELECT contact_id, name, birthday FROM contacts ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	type contactRow struct {
		id, name string
		birthday sql.NullString
	}
	var contacts []contactRow
	for rows.Next() {
		var c contactRow
		if err := rows.Scan(&c.id, &c.name, &c.birthday); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}

	for _, c := range contacts {
		rec := types.NewRecord(c.name)
		if err := s.hydratePhones(db, c.id, rec); err != nil {
			return nil, err
		}
		if c.birthday.Valid {
			if err := rec.SetBirthday(c.birthday.String); err != nil {
				s.log.Warn("snapshot.skip_birthday", "name", c.name, "error", err)
			}
		}
		dir.Add(rec)
	}

	s.log.Info("snapshot.loaded", "path", s.path, "contacts", dir.Len())
	return dir, nil
}

func (s *Store) hydratePhones(db *sql.DB, contactID string, rec *types.Record) error {
	rows, err := db.Query("SELECT number FROM phones WHERE contact_id = ? ORDER BY position", contactID)
	if err != nil {
		return fmt.Errorf("querying phones for %q: %w", rec.Name(), err)
	}
	defer rows.Close()
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return fmt.Errorf("scanning phone: %w", err)
		}
		if err := rec.AddPhone(number); err != nil {
			s.log.Warn("snapshot.skip_phone", "name", rec.Name(), "error", err)
		}
	}
	return rows.Err()
}

// Save replaces every stored row with the contents of dir in one transaction.
func (s *Store) Save(dir *types.Directory) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM phones", "DELETE FROM contacts", "DELETE FROM snapshot_meta"} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("clearing snapshot: %w", err)
		}
	}

	insertContact, err := tx.Prepare("INSERT INTO contacts (contact_id, name, birthday, position) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing contact insert: %w", err)
	}
	defer insertContact.Close()

	insertPhone, err := tx.Prepare("INSERT INTO phones (contact_id, position, number) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing phone insert: %w", err)
	}
	defer insertPhone.Close()

	for pos, rec := range dir.All() {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating UUID v7: %w", err)
		}
		var birthday sql.NullString
		if b, ok := rec.Birthday(); ok {
			birthday = sql.NullString{String: b.String(), Valid: true}
		}
		if _, err := insertContact.Exec(id.String(), rec.Name(), birthday, pos); err != nil {
			return fmt.Errorf("inserting contact %q: %w", rec.Name(), err)
		}
		for i, number := range rec.PhoneValues() {
			if _, err := insertPhone.Exec(id.String(), i, number); err != nil {
				return fmt.Errorf("inserting phone for %q: %w", rec.Name(), err)
			}
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO snapshot_meta (id, version, saved_at) VALUES (1, ?, ?)",
		types.SnapshotVersion, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("writing snapshot version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	s.log.Info("snapshot.saved", "path", s.path, "contacts", dir.Len())
	return nil
}
