package types

import "time"

// BirthdayWindowDays is how many days ahead UpcomingBirthdays looks,
// inclusive of today.
const BirthdayWindowDays = 7

// Directory maps contact names to Records and iterates in insertion order.
// It is not safe for concurrent use.
type Directory struct {
	order   []string
	records map[string]*Record
}

// NewDirectory returns an empty Directory.
func NewDirectory() *Directory {
	return &Directory{records: make(map[string]*Record)}
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.order)
}

// Add inserts rec under its name. An existing entry with the same name is
// replaced in place and keeps its position.
func (d *Directory) Add(rec *Record) {
	if _, ok := d.records[rec.name]; !ok {
		d.order = append(d.order, rec.name)
	}
	d.records[rec.name] = rec
}

// AddOrUpdate appends phone to the record called name, creating the record
// when it does not exist. An invalid phone leaves the directory unchanged.
func (d *Directory) AddOrUpdate(name, phone string) error {
	if rec, ok := d.records[name]; ok {
		return rec.AddPhone(phone)
	}
	rec := NewRecord(name)
	if err := rec.AddPhone(phone); err != nil {
		return err
	}
	d.Add(rec)
	return nil
}

// Find returns the record called name, or nil if there is none.
func (d *Directory) Find(name string) *Record {
	return d.records[name]
}

// Get is Find that returns ErrContactNotFound for a missing name.
func (d *Directory) Get(name string) (*Record, error) {
	rec, ok := d.records[name]
	if !ok {
		return nil, ErrContactNotFound
	}
	return rec, nil
}

// Remove deletes the record called name and reports whether it existed.
func (d *Directory) Remove(name string) bool {
	if _, ok := d.records[name]; !ok {
		return false
	}
	delete(d.records, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns every record in insertion order.
func (d *Directory) All() []*Record {
	out := make([]*Record, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.records[name])
	}
	return out
}

// UpcomingBirthdays returns, in directory order, the records whose birthday
// falls between today and BirthdayWindowDays days later. Only this calendar
// year's occurrence is considered: a birthday that already passed this year
// is excluded even when next year's falls inside the window. A 29 February
// birthday lands on 1 March in non-leap years.
func (d *Directory) UpcomingBirthdays(today time.Time) []*Record {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var out []*Record
	for _, rec := range d.All() {
		b, ok := rec.Birthday()
		if !ok {
			continue
		}
		bd := b.Date()
		candidate := time.Date(start.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
		delta := int(candidate.Sub(start).Hours() / 24)
		if delta >= 0 && delta <= BirthdayWindowDays {
			out = append(out, rec)
		}
	}
	return out
}
