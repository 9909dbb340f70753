package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// productBaseQuery is the three-way join behind every product view.
// The projection is fixed: the UI renders exactly these columns, in this
// order, after humanizing the names.
const productBaseQuery = `
	SELECT Product.product_id, Product.name, Product.colour, Product.stock,
		Product.low_stock_warning, Design.name AS design, Design.theme,
		ProductType.type, ProductType.sub_type
	FROM Product
	JOIN Design ON Product.design_id = Design.design_id
	JOIN ProductType ON Product.product_type_id = ProductType.product_type_id`

// componentBaseQuery is the plain component scan.
const componentBaseQuery = `
	SELECT component_id, name, stock, low_stock_warning
	FROM Component`

// lowStockColumns is the shared projection of both low-stock queries, so
// product and component matches can form one combined row set.
var lowStockColumns = []string{"name", "stock", "low_stock_warning"}

// FilterItems returns products or components matching the given filters.
//
// Filter values are always bound as parameters; the columns they compare
// against come only from the static filter spec tables. Filter keys that
// have no column for the kind (e.g. Design on a component query) are
// ignored. Zero active filters returns every row of the kind.
func (r *SQLiteRepository) FilterItems(ctx context.Context, kind ItemKind, filters Filters) (*Table, error) {
	var base string
	var specs []filterSpec

	switch kind {
	case KindProduct:
		base = productBaseQuery
		specs = productFilterSpecs
	case KindComponent:
		base = componentBaseQuery
		specs = componentFilterSpecs
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}

	clause, args, err := buildWhereClause(specs, filters)
	if err != nil {
		return nil, err
	}

	return r.queryTable(ctx, base+clause, args...)
}

// LowStockItems returns (name, stock, low_stock_warning) rows for each
// requested kind where stock <= low_stock_warning. The boundary is
// inclusive: an item exactly at its warning level is low stock.
//
// When both kinds are requested the two row sets are combined into one
// table (the column shapes are identical). When neither is requested the
// result is an empty table rather than an error.
func (r *SQLiteRepository) LowStockItems(ctx context.Context, includeProducts, includeComponents bool) (*Table, error) {
	const productLowStock = `
		SELECT name, stock, low_stock_warning FROM Product
		WHERE stock <= low_stock_warning`
	const componentLowStock = `
		SELECT name, stock, low_stock_warning FROM Component
		WHERE stock <= low_stock_warning`

	switch {
	case includeProducts && includeComponents:
		return r.queryTable(ctx, productLowStock+" UNION ALL "+componentLowStock)
	case includeProducts:
		return r.queryTable(ctx, productLowStock)
	case includeComponents:
		return r.queryTable(ctx, componentLowStock)
	default:
		// Nothing requested, nothing returned.
		return &Table{Columns: lowStockColumns}, nil
	}
}

// DistinctValues returns the distinct non-empty values of one column of one
// table. NULLs and empty strings are excluded so dropdowns only offer real
// choices.
//
// Both identifiers pass the database guard before being spliced into the
// statement; an unvalidated name never reaches the engine.
func (r *SQLiteRepository) DistinctValues(ctx context.Context, table, column string) ([]string, error) {
	if err := r.db.ValidateTableName(ctx, table); err != nil {
		return nil, err
	}
	if err := r.db.ValidateColumnNames(ctx, []string{column}); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT DISTINCT %q FROM %q WHERE %q IS NOT NULL AND %q != ''",
		column, table, column, column)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scanning distinct value: %w", err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating distinct values: %w", err)
	}
	return values, nil
}

// ComponentsOfProduct returns the product's bill of materials: one
// (component ID, quantity used) pair per associated component, unordered.
func (r *SQLiteRepository) ComponentsOfProduct(ctx context.Context, productID int64) ([]ComponentUse, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT component_id, num_components_used FROM MadeUsing WHERE product_id = ?",
		productID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uses []ComponentUse
	for rows.Next() {
		var use ComponentUse
		if err := rows.Scan(&use.ComponentID, &use.Quantity); err != nil {
			return nil, fmt.Errorf("scanning bill of materials: %w", err)
		}
		uses = append(uses, use)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bill of materials: %w", err)
	}
	return uses, nil
}

// ComponentName resolves a component ID to its name.
func (r *SQLiteRepository) ComponentName(ctx context.Context, componentID int64) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx,
		"SELECT name FROM Component WHERE component_id = ?", componentID,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: component %d", ErrItemNotFound, componentID)
	}
	if err != nil {
		return "", fmt.Errorf("querying component name: %w", err)
	}
	return name, nil
}

// Movements returns stock movement ledger entries, newest first.
// Limit defaults to 50 and is capped at 200.
func (r *SQLiteRepository) Movements(ctx context.Context, filter MovementFilter) ([]Movement, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultMovementLimit
	}
	if limit > maxMovementLimit {
		limit = maxMovementLimit
	}

	query := `SELECT movement_id, item_kind, item_id, delta, reason, created_at
		FROM StockMovement`
	var args []any

	switch {
	case filter.Kind != "" && filter.ItemID != 0:
		query += " WHERE item_kind = ? AND item_id = ?"
		args = append(args, string(filter.Kind), filter.ItemID)
	case filter.Kind != "":
		query += " WHERE item_kind = ?"
		args = append(args, string(filter.Kind))
	}

	query += " ORDER BY created_at DESC, rowid DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []Movement
	for rows.Next() {
		movement, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movements: %w", err)
	}
	return movements, nil
}
