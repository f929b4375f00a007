package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells transient driver failures apart
// from permanent ones.
type ErrorClassification int

const (
	// NonRetryable marks a permanent failure. It is the default for
	// unrecognised errors and constraint violations.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss, a deadlock rollback or
	// a locked SQLite database).
	Retryable
)

// ErrorClassificator inspects driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether err is transient.
	Classify(err error) ErrorClassification

	// UniqueViolation reports whether err is a unique constraint violation.
	// The returned string names the violated constraint (PostgreSQL) or the
	// offending columns (SQLite) and is meant for substring matching.
	UniqueViolation(err error) (string, bool)
}
