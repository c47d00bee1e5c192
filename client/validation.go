package client

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"banking-ledger/taxid"
)

// BirthDateLayout is the dd-mm-yyyy layout used on the signup form.
const BirthDateLayout = "02-01-2006"

type validPerson struct {
	fullName  string
	birthDate time.Time
	taxID     taxid.TaxID
	address   string
}

func validatePersonParams(p PersonParams, validator *taxid.Validator, now time.Time) (validPerson, error) {
	id, err := validator.Validate(taxid.TaxID(p.TaxID))
	if err != nil {
		return validPerson{}, err
	}
	fullName, err := validateFullName(p.FullName)
	if err != nil {
		return validPerson{}, err
	}
	birthDate, err := validateBirthDate(p.BirthDate, now)
	if err != nil {
		return validPerson{}, err
	}
	address := strings.TrimSpace(p.Address)
	if address == "" {
		return validPerson{}, ErrInvalidAddress
	}
	return validPerson{fullName: fullName, birthDate: birthDate, taxID: id, address: address}, nil
}

func validateFullName(fullName string) (string, error) {
	fullName = strings.TrimSpace(fullName)
	if utf8.RuneCountInString(fullName) < 3 {
		return "", ErrInvalidFullName
	}
	return fullName, nil
}

func validateBirthDate(raw string, now time.Time) (time.Time, error) {
	t, err := time.Parse(BirthDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidBirthDate, err)
	}
	if t.After(now) {
		return time.Time{}, ErrInvalidBirthDate
	}
	return t, nil
}
