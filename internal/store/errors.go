package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemWithoutID is returned by Put for an item with an empty
	// identifier.
	ErrItemWithoutID = errors.New("item has no id")

	// ErrInvalidFileHash is returned by the file store for a hash that is
	// empty or would escape the files directory.
	ErrInvalidFileHash = errors.New("invalid file hash")

	// ErrUserAlreadyExists is returned by CreateUser for a taken email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned by FindUser for an unknown user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDeviceNotFound is returned for a device that is not registered.
	ErrDeviceNotFound = errors.New("device not found")
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
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan item rows")

	// ErrDecodingItem is returned when a stored payload is not valid item
	// JSON.
	ErrDecodingItem = errors.New("failed to decode stored item")
)
