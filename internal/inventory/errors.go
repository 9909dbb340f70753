package inventory

import "errors"

// Domain errors for the inventory package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, inventory.ErrDuplicateName) {
//	    // show "name already in use"
//	}
var (
	// ErrDuplicateName is returned when an insert violates the unique
	// constraint on a name column. The caller should report the clash
	// and not retry automatically.
	ErrDuplicateName = errors.New("inventory: name already in use")

	// ErrReferenceNotFound is returned when a foreign name supplied to an
	// insert does not resolve to an existing row (e.g. an unknown design
	// name passed to InsertProduct).
	ErrReferenceNotFound = errors.New("inventory: referenced name not found")

	// ErrItemNotFound is returned when an item ID does not exist.
	ErrItemNotFound = errors.New("inventory: item not found")

	// ErrUnknownKind is returned when an ItemKind is neither Product nor Component.
	ErrUnknownKind = errors.New("inventory: unknown item kind")

	// ErrNotAnInteger is returned when numeric input from the presentation
	// boundary (stock deltas, quantities, stock-level filters) does not
	// parse as an integer. Distinct from database errors: the fault is in
	// the input, not storage.
	ErrNotAnInteger = errors.New("inventory: not an integer")

	// ErrValueCountMismatch is returned by InsertRow when the number of
	// values does not match the table's insertable columns.
	ErrValueCountMismatch = errors.New("inventory: value count does not match columns")
)
