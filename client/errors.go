package client

import "errors"

var (
	ErrAccountNotLinked = errors.New("account is not linked to this client")
	ErrInvalidFullName  = errors.New("full name must be at least 3 characters long")
	ErrInvalidBirthDate = errors.New("birth date must be a past date in dd-mm-yyyy format")
	ErrInvalidAddress   = errors.New("address is required")
)
