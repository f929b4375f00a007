package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup by id or username matches no
	// user record.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUsernameTaken is returned when an INSERT into users violates the
	// unique username constraint.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when an INSERT into users violates the
	// unique email constraint.
	ErrEmailTaken = errors.New("email already exists")

	// ErrSessionNotFound is returned when no session row matches the token.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrCategoryNotFound is returned when no category row matches the id
	// (and owner, for owner-scoped writes).
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrTagNotFound is returned when no tag row matches the id
	// (and owner, for owner-scoped writes).
	ErrTagNotFound = errors.New("tag was not found")

	// ErrActivityNotFound is returned when no activity row matches the id
	// (and owner, for owner-scoped writes).
	ErrActivityNotFound = errors.New("activity was not found")

	// ErrDuplicateName is returned when a category or tag write violates the
	// per-owner unique name constraint.
	ErrDuplicateName = errors.New("name already exists for this user")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
