// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrServerNotFound is returned when no stored server has the requested
	// host.
	ErrServerNotFound = errors.New("server was not found")

	// ErrConstraintViolation matches every [*ConstraintViolationError].
	ErrConstraintViolation = errors.New("uniqueness constraint violated")

	// ErrEmptyField is returned when the database rejects a row because one of
	// its fields is empty or NULL.
	ErrEmptyField = errors.New("empty field rejected by database")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrPreparingStatement   = errors.New("failed to prepare statement")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRows         = errors.New("failed to scan server rows")
)

// Field names the uniqueness rule a row broke.
type Field string

const (
	FieldHost    Field = "host"
	FieldLabel   Field = "label"
	FieldUnknown Field = "unknown"
)

// ConstraintViolationError reports a row of a [ServerRepository.ReplaceAll]
// call that collides with another row of the same set. The transaction is
// rolled back and the previously stored set is left as it was.
type ConstraintViolationError struct {
	// Field is the column whose uniqueness was violated.
	Field Field
	// Value is the offending value of Field.
	Value string
	// Index is the position of the offending row in the incoming set.
	Index int
	// Err is the driver error, nil when the collision was found before
	// touching the database.
	Err error
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("%s: %s %q (row %d)", ErrConstraintViolation, e.Field, e.Value, e.Index)
}

// Is makes errors.Is(err, ErrConstraintViolation) true.
func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}
