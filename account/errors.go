package account

import "errors"

var (
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrLimitExceeded           = errors.New("amount exceeds the per-operation limit")
	ErrWithdrawalCountExceeded = errors.New("withdrawal count exceeded")
	ErrUnknownOperation        = errors.New("unknown operation kind")
)
