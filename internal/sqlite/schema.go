// Package sqlite implements the SQLite snapshot store. Save rewrites every
// row in one transaction; Load rebuilds the Directory ordered by position.
package sqlite

// Schema DDL. Statements are idempotent so an existing database opens cleanly.
const (
	createSnapshotMeta = `CREATE TABLE IF NOT EXISTS snapshot_meta (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    version INTEGER NOT NULL,
    saved_at TEXT NOT NULL
);`

	createContacts = `CREATE TABLE IF NOT EXISTS contacts (
    contact_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    birthday TEXT,
    position INTEGER NOT NULL
);`

	createPhones = `CREATE TABLE IF NOT EXISTS phones (
    contact_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    number TEXT NOT NULL,
    PRIMARY KEY (contact_id, position),
    FOREIGN KEY (contact_id) REFERENCES contacts(contact_id) ON DELETE CASCADE
);`
)

// Index DDL.
const (
	idxContactsPosition = `CREATE INDEX IF NOT EXISTS idx_contacts_position ON contacts(position);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createSnapshotMeta,
	createContacts,
	createPhones,
	idxContactsPosition,
}
