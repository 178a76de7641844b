package types

// phoneDigits is the exact length of a valid phone number.
const phoneDigits = 10

// Phone is a validated phone number: exactly ten ASCII digits.
// The zero value is not a valid Phone; construct with ParsePhone.
type Phone struct {
	value string
}

// ParsePhone validates text and returns it as a Phone. The stored value is
// text verbatim. Returns ErrInvalidPhone otherwise.
func ParsePhone(text string) (Phone, error) {
	if len(text) != phoneDigits {
		return Phone{}, ErrInvalidPhone
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return Phone{}, ErrInvalidPhone
		}
	}
	return Phone{value: text}, nil
}

// String returns the raw ten-digit value.
func (p Phone) String() string {
	return p.value
}
