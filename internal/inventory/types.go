package inventory

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ItemKind selects which stockable entity an operation targets.
type ItemKind string

// The two stockable kinds. Values double as table names in the schema.
const (
	KindProduct   ItemKind = "Product"
	KindComponent ItemKind = "Component"
)

// idColumn returns the surrogate key column for the kind.
func (k ItemKind) idColumn() (string, error) {
	switch k {
	case KindProduct:
		return "product_id", nil
	case KindComponent:
		return "component_id", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
}

// Table is a tabular query result: raw column names plus data rows in the
// engine's natural order (no ORDER BY is applied; the UI sorts client-side).
type Table struct {
	Columns []string
	Rows    [][]any
}

// ComponentUse is one line of a product's bill of materials, by component ID.
type ComponentUse struct {
	ComponentID int64
	Quantity    int
}

// BOMLine is one line of a product's bill of materials, by component name.
// Used when inserting a product, before names are resolved to IDs.
type BOMLine struct {
	ComponentName string
	Quantity      int
}

// NewProduct describes a product to insert. DesignName and ProductTypeName
// are resolved to their surrogate IDs at insert time; Components may be
// empty for a product with no declared bill of materials.
type NewProduct struct {
	Name            string
	DesignName      string
	Colour          string
	ProductTypeName string
	Stock           int
	LowStockWarning int
	Components      []BOMLine
}

// Movement is one entry of the stock movement ledger.
type Movement struct {
	ID        string
	Kind      ItemKind
	ItemID    int64
	Delta     int
	Reason    string
	CreatedAt time.Time
}

// MovementFilter controls which ledger entries Movements returns.
type MovementFilter struct {
	Kind   ItemKind // optional: filter by item kind
	ItemID int64    // optional: filter by item ID (requires Kind)
	Limit  int      // default 50, max 200
}

// ParseInt converts numeric input from the presentation boundary (spinbox
// text, quantity fields) into an int. A value that does not parse is an
// input fault, reported as ErrNotAnInteger rather than a storage error.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotAnInteger, s)
	}
	return n, nil
}
