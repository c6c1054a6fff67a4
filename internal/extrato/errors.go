package extrato

import "errors"

var (
	// ErrInvalidMonth is returned for an explicit month outside [1, 12].
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned for an explicit year that fails the basic
	// sanity check.
	ErrInvalidYear = errors.New("year is out of range")

	// ErrSnapshotExists means an extrato already covers the period and the
	// caller did not pass force.
	ErrSnapshotExists = errors.New("extrato already exists for this period")

	// ErrSnapshotNotFound means no extrato matches the requested id or period.
	ErrSnapshotNotFound = errors.New("extrato not found")

	// ErrBackupMissing means the backup gate refused the run: no durable
	// export exists for the period and the strict policy is active.
	ErrBackupMissing = errors.New("no verified backup exists for this period")

	// ErrCountMismatch means the dependency-ordered delete removed a
	// different number of rows than the query layer fetched. The whole
	// transaction, snapshot insert included, is rolled back.
	ErrCountMismatch = errors.New("deleted row count does not match fetched records")
)
