package inventory

import (
	"fmt"
	"strings"
)

// FilterKey identifies one recognised filter for FilterItems.
type FilterKey string

// Recognised filter keys. Each maps to exactly one column of the base
// query for its kind; see productFilterSpecs and componentFilterSpecs.
const (
	FilterNameSearch FilterKey = "NameSearch"
	FilterDesign     FilterKey = "Design"
	FilterTheme      FilterKey = "Theme"
	FilterType       FilterKey = "Type"
	FilterSubType    FilterKey = "SubType"
	FilterColour     FilterKey = "Colour"
	FilterStockLevel FilterKey = "StockLevel"
)

// Filters is a sparse mapping of filter keys to values. Keys with empty
// values are omitted from filtering; active filters combine with AND.
type Filters map[FilterKey]string

// matchKind is how a filter value is compared against its column.
type matchKind int

const (
	matchEquals    matchKind = iota // column = ?
	matchSubstring                  // column LIKE ? with wildcards both sides
	matchInteger                    // column = ?, value parsed as an integer first
)

// filterSpec binds a filter key to a column of the base query.
//
// This static table is the only source of identifiers used when building
// WHERE clauses: values are always bound as parameters, and column names
// only ever come from here, never from free-form input.
type filterSpec struct {
	key    FilterKey
	column string
	match  matchKind
}

// productFilterSpecs maps filters onto the Product⋈Design⋈ProductType join.
var productFilterSpecs = []filterSpec{
	{FilterNameSearch, "Product.name", matchSubstring},
	{FilterDesign, "Design.name", matchEquals},
	{FilterTheme, "Design.theme", matchEquals},
	{FilterType, "ProductType.type", matchEquals},
	{FilterSubType, "ProductType.sub_type", matchEquals},
	{FilterColour, "Product.colour", matchEquals},
	{FilterStockLevel, "Product.stock", matchInteger},
}

// componentFilterSpecs maps filters onto the plain Component scan.
// Keys with no component column (design, theme, ...) are not listed and
// are ignored for component queries, matching the narrower filter set the
// component view offers.
var componentFilterSpecs = []filterSpec{
	{FilterNameSearch, "Component.name", matchSubstring},
	{FilterStockLevel, "Component.stock", matchInteger},
}

// buildWhereClause folds the non-empty filters into a conjunctive WHERE
// clause with bound parameters. Returns an empty clause when no filter is
// active, so the base query runs unfiltered.
func buildWhereClause(specs []filterSpec, filters Filters) (clause string, args []any, err error) {
	var conditions []string

	for _, spec := range specs {
		value, ok := filters[spec.key]
		if !ok || value == "" {
			continue
		}

		switch spec.match {
		case matchSubstring:
			conditions = append(conditions, spec.column+" LIKE ?")
			args = append(args, "%"+value+"%")
		case matchInteger:
			n, err := ParseInt(value)
			if err != nil {
				return "", nil, fmt.Errorf("filter %s: %w", spec.key, err)
			}
			conditions = append(conditions, spec.column+" = ?")
			args = append(args, n)
		default:
			conditions = append(conditions, spec.column+" = ?")
			args = append(args, value)
		}
	}

	if len(conditions) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args, nil
}
