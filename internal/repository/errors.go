// Package repository contains the data access layer.  This file defines
// sentinel errors shared by every repository so handlers can translate
// failure kinds into HTTP statuses: ErrDuplicateKey when a natural key
// (CPF, CRMV, nome) is already taken, ErrCapacityExceeded when a habitat
// or evento is full, and ErrConflict when dependent records block an
// operation (deleting a habitat that still houses animals, enrolling the
// same visitor twice).
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicateKey is returned when an insert or update violates a unique
// natural-key constraint.  Handlers translate it to HTTP 409.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrCapacityExceeded is returned when an insert or move would push a
// habitat or evento past its capacity.  Handlers translate it to 409.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// ErrConflict is returned when an operation cannot proceed because of
// conflicting state, such as deleting a species that still has animals.
// Handlers translate it to HTTP 409.
var ErrConflict = errors.New("conflict")

// mysqlDuplicateEntry is the MySQL error number for a unique-constraint
// violation.  The constraint is the canonical enforcement point; the
// pre-flight Exists checks in the service layer are an optimization and
// a race between them and the write is absorbed here.
const mysqlDuplicateEntry = 1062

// asDuplicate maps a MySQL duplicate-entry error to the given sentinel
// and returns every other error unchanged.
func asDuplicate(err, sentinel error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return sentinel
	}
	return err
}
