package jsonl

// formatName identifies a contacts snapshot in the header line.
const formatName = "contacts"

// headerJSON is the first line of contacts.jsonl.
type headerJSON struct {
	Format  string `json:"format"`
	Version int    `json:"version"`
}

// contactJSON is one contact line in contacts.jsonl. Phones are stored
// verbatim in list order; Birthday is DD.MM.YYYY or null.
type contactJSON struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday"`
}
