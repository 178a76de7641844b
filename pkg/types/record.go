package types

import (
	"fmt"
	"strings"
)

// birthdayNotSet is shown by Record.String when no birthday is set.
const birthdayNotSet = "N/A"

// Record is one contact: a name fixed at creation, an ordered list of phones
// (duplicates allowed), and an optional birthday.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a Record with no phones and no birthday.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the contact name.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// PhoneValues returns the raw phone strings in insertion order.
func (r *Record) PhoneValues() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.String()
	}
	return out
}

// AddPhone validates text and appends it. Duplicates are not rejected.
func (r *Record) AddPhone(text string) error {
	p, err := ParsePhone(text)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to value and reports whether one
// was removed.
func (r *Record) RemovePhone(value string) bool {
	i := r.indexOf(value)
	if i < 0 {
		return false
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return true
}

// EditPhone replaces the first phone equal to oldValue with newValue, keeping
// its position. It reports whether oldValue was found; newValue is only
// validated once a match exists.
func (r *Record) EditPhone(oldValue, newValue string) (bool, error) {
	i := r.indexOf(oldValue)
	if i < 0 {
		return false, nil
	}
	p, err := ParsePhone(newValue)
	if err != nil {
		return true, err
	}
	r.phones[i] = p
	return true, nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	i := r.indexOf(value)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// SetBirthday validates text and replaces any previous birthday.
func (r *Record) SetBirthday(text string) error {
	b, err := ParseBirthday(text)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String describes the record on one line.
func (r *Record) String() string {
	birthday := birthdayNotSet
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(r.PhoneValues(), ", "), birthday)
}

func (r *Record) indexOf(value string) int {
	for i, p := range r.phones {
		if p.value == value {
			return i
		}
	}
	return -1
}
