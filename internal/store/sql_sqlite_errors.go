// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassifier.Classify].
// It tells which table rule, if any, a failed statement broke.
type ErrorClassification int

const (
	// NotConstraint is returned for nil and non-constraint errors.
	NotConstraint ErrorClassification = iota
	// PrimaryKeyViolation means the host is already taken.
	PrimaryKeyViolation
	// UniqueViolation means the label is already taken.
	UniqueViolation
	// EmptyValueViolation covers NOT NULL and CHECK (x <> '') failures.
	EmptyValueViolation
	// OtherConstraintViolation is any other SQLITE_CONSTRAINT code.
	OtherConstraintViolation
)

// ErrorClassifier maps driver errors to an [ErrorClassification].
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}

// SQLiteErrorClassifier implements [ErrorClassifier] for mattn/go-sqlite3.
// It relies on the extended result code, never on the message text.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassifier]. It attempts to unwrap err as a
// sqlite3.Error and delegates to [ClassifySQLiteError].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NotConstraint
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	var sqliteErrPtr *sqlite3.Error
	if errors.As(err, &sqliteErrPtr) && sqliteErrPtr != nil {
		return ClassifySQLiteError(*sqliteErrPtr)
	}

	return NotConstraint
}

// ClassifySQLiteError maps a sqlite3.Error to an [ErrorClassification] based
// on its extended result code.
//
// The servers table declares host as PRIMARY KEY and label as UNIQUE, so a
// primary key failure always names the host and a unique failure the label.
func ClassifySQLiteError(sqliteErr sqlite3.Error) ErrorClassification {
	if sqliteErr.Code != sqlite3.ErrConstraint {
		return NotConstraint
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintPrimaryKey:
		return PrimaryKeyViolation
	case sqlite3.ErrConstraintUnique:
		return UniqueViolation
	case sqlite3.ErrConstraintNotNull,
		sqlite3.ErrConstraintCheck:
		return EmptyValueViolation
	}

	return OtherConstraintViolation
}
