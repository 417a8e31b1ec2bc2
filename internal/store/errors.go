package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// profile fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoProfileWasFound is returned when a query expected to match at
	// least one profile record produces an empty result set.
	ErrNoProfileWasFound = errors.New("no profile was found")

	// ErrNoTemplateWasFound is returned when a template lookup targets an
	// identifier that does not exist in the gallery.
	ErrNoTemplateWasFound = errors.New("no template was found")

	// ErrConfigNotSaved is returned when an UPDATE of a profile's stored
	// configuration completes without error but affects zero rows, meaning
	// the profile does not exist.
	ErrConfigNotSaved = errors.New("page config was not saved")
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan profile row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan profile rows")
)
