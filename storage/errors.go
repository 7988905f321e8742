package storage

import (
	"errors"
)

// Sentinel errors of the ledger. Implementations translate their backend
// specific errors (for example badger.ErrKeyNotFound) into these, so that the
// custody engine never depends on a particular database.
var (
	// ErrNotFound is returned when a record or custody slot does not exist.
	ErrNotFound = errors.New("key not found")

	// ErrAlreadyExists is returned when inserting a record under a key that is
	// already taken.
	ErrAlreadyExists = errors.New("key already exists")

	// ErrInsufficientBalance is returned by transfers that would leave the
	// source slot with a negative balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrOverflow is returned when accumulating a stored amount would wrap.
	ErrOverflow = errors.New("amount overflow")
)
