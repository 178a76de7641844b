package types

// Store persists a Directory snapshot. Load returns an empty Directory when
// no snapshot exists yet. Save replaces any previous snapshot. Path names the
// file holding the snapshot.
type Store interface {
	Load() (*Directory, error)
	Save(dir *Directory) error
	Path() string
}

// SnapshotVersion is the current snapshot format version written by stores.
const SnapshotVersion = 1
