package types

import (
	"regexp"
	"time"
)

// BirthdayLayout is the day.month.year layout used to parse and format birthdays.
const BirthdayLayout = "02.01.2006"

// birthdayPattern pins the shape before calendar validation so that
// single-digit days or signed years are rejected.
var birthdayPattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// Birthday is a validated calendar date with no time component.
type Birthday struct {
	date time.Time
}

// ParseBirthday validates text as DD.MM.YYYY naming a real calendar date.
// Past and future dates are both accepted. Returns ErrInvalidBirthday otherwise.
func ParseBirthday(text string) (Birthday, error) {
	if !birthdayPattern.MatchString(text) {
		return Birthday{}, ErrInvalidBirthday
	}
	t, err := time.Parse(BirthdayLayout, text)
	if err != nil {
		return Birthday{}, ErrInvalidBirthday
	}
	return Birthday{date: t}, nil
}

// Date returns the birthday as midnight UTC.
func (b Birthday) Date() time.Time {
	return b.date
}

// String formats the birthday as DD.MM.YYYY.
func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}
