package taxid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ELadrimonos/national-document-validator/validators"
	"github.com/ELadrimonos/national-document-validator/validators/es"
)

var (
	ErrEmpty              = errors.New("tax id is required")
	ErrInvalid            = errors.New("invalid tax id")
	ErrUnsupportedCountry = errors.New("unsupported tax id country")
)

// TaxID is a personal tax identifier (CPF, DNI/NIE, ...) as typed by the user.
type TaxID string

// Normalize removes spaces and the usual separators and upper-cases letters,
// so "123.456.789-09" and "12345678909" are the same id.
func (t TaxID) Normalize() TaxID {
	s := strings.ToUpper(strings.TrimSpace(string(t)))
	s = strings.NewReplacer(" ", "", "-", "", ".", "", "/", "").Replace(s)
	return TaxID(s)
}

// Equal compares two ids after normalizing both.
func (t TaxID) Equal(other TaxID) bool {
	return t.Normalize() == other.Normalize()
}

// Mask hides all but the last three characters. Use it whenever a tax id is
// written to logs or listings.
// Example: "12345678Z" -> "******78Z"
func (t TaxID) Mask() string {
	s := string(t.Normalize())
	if len(s) <= 3 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-3) + s[len(s)-3:]
}

func (t TaxID) String() string {
	return string(t)
}

// Validator checks tax ids. With no country it only checks the shape of the
// id; with a country it also verifies the national check digits.
type Validator struct {
	country string
	check   func(string) error
}

func NewValidator(country string) (*Validator, error) {
	country = strings.ToLower(strings.TrimSpace(country))
	switch country {
	case "":
		return &Validator{}, nil
	case "es":
		v := validators.NewValidator()
		v.Register("es", &es.ESValidator{})
		return &Validator{
			country: country,
			check: func(s string) error {
				return v.Validate("es", s)
			},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCountry, country)
	}
}

func (v *Validator) Country() string {
	return v.country
}

// Validate returns the normalized id, or an error wrapping ErrEmpty or
// ErrInvalid.
func (v *Validator) Validate(t TaxID) (TaxID, error) {
	n := t.Normalize()
	if n == "" {
		return "", ErrEmpty
	}
	for _, r := range n {
		if (r < '0' || r > '9') && (r < 'A' || r > 'Z') {
			return "", fmt.Errorf("%w: unexpected character %q", ErrInvalid, r)
		}
	}
	if v.check != nil {
		if err := v.check(string(n)); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return n, nil
}
