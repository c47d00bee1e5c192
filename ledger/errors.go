package ledger

import "errors"

var (
	ErrDuplicateTaxID = errors.New("a client with this tax id already exists")
	ErrNotFound       = errors.New("not found")
)
