// Package usecase implements the business logic for the tools feature.
package usecase

import "errors"

var (
	// ErrOwnerNotFound is returned when the referenced owning user does not exist.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrToolNotFound is returned when no tool exists with the given ID.
	ErrToolNotFound = errors.New("tool not found")

	// ErrOwnedSetCorrupted is returned when an existing tool references a
	// missing owner. This means the referential invariant was already broken
	// before the call and is treated as a fatal consistency fault, never as
	// a recoverable not-found.
	ErrOwnedSetCorrupted = errors.New("tool references a missing owner")
)
