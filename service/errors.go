package service

import "errors"

// Sentinel errors for the ledger/credit engine. Controllers map these to
// HTTP statuses; inside the engine they abort the enclosing transaction.
var (
	ErrCreditNotFound     = errors.New("credit record not found")
	ErrCreditSettled      = errors.New("credit record already settled")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrOverpayment        = errors.New("amount exceeds outstanding balance")
	ErrInvalidPayMethod   = errors.New("payment method must be CASH or BANK")
	ErrLedgerNotFound     = errors.New("ledger not found")
	ErrLedgerInactive     = errors.New("ledger is not active")
	ErrLedgerTypeMismatch = errors.New("ledger type does not match payment method")
	ErrInsufficientFunds  = errors.New("insufficient ledger balance")
)
