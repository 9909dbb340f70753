package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/quietloom/stockroom/internal/infrastructure/database"
)

// Repository defines the persistence operations of the inventory facade.
// This abstraction allows for different implementations (SQLite, mock, etc.)
// and enables unit testing of the service layer without a database.
type Repository interface {
	// FilterItems returns products or components matching the given filters.
	// Zero active filters returns every row of the kind.
	FilterItems(ctx context.Context, kind ItemKind, filters Filters) (*Table, error)

	// LowStockItems returns (name, stock, low_stock_warning) rows for each
	// requested kind where stock <= low_stock_warning.
	LowStockItems(ctx context.Context, includeProducts, includeComponents bool) (*Table, error)

	// DistinctValues returns the distinct non-empty values of one column of
	// one table, for populating dropdown choices.
	DistinctValues(ctx context.Context, table, column string) ([]string, error)

	// ComponentsOfProduct returns the product's bill of materials, unordered.
	ComponentsOfProduct(ctx context.Context, productID int64) ([]ComponentUse, error)

	// ComponentName resolves a component ID to its name.
	// Returns ErrItemNotFound if the component does not exist.
	ComponentName(ctx context.Context, componentID int64) (string, error)

	// InsertDesign appends a design. Returns ErrDuplicateName if the name exists.
	InsertDesign(ctx context.Context, name, theme string) (int64, error)

	// InsertProductType appends a product type. Returns ErrDuplicateName if the name exists.
	InsertProductType(ctx context.Context, name, productType, subType string) (int64, error)

	// InsertComponent appends a component. Returns ErrDuplicateName if the name exists.
	InsertComponent(ctx context.Context, name string, stock, lowStockWarning int) (int64, error)

	// InsertProduct inserts a product and its bill of materials atomically.
	// Returns ErrReferenceNotFound if the design, product type, or any
	// component name does not resolve; ErrDuplicateName on a name clash.
	InsertProduct(ctx context.Context, product NewProduct) (int64, error)

	// InsertRow appends one row to the named table, deriving the column
	// list from the live schema catalog. Used by development seeding.
	InsertRow(ctx context.Context, table string, values []any) error

	// AdjustStock applies a signed delta to one item's stock.
	// No floor is enforced; negative resulting stock is the caller's concern.
	AdjustStock(ctx context.Context, kind ItemKind, id int64, delta int) error

	// AdjustProductStockCascading applies delta to the product and
	// delta*quantity to each of its components, atomically.
	AdjustProductStockCascading(ctx context.Context, productID int64, delta int) error

	// DeleteProduct removes one product; MadeUsing rows cascade via the schema.
	DeleteProduct(ctx context.Context, id int64) error

	// DeleteComponent removes one component; MadeUsing rows cascade via the schema.
	DeleteComponent(ctx context.Context, id int64) error

	// Movements returns stock movement ledger entries, newest first.
	Movements(ctx context.Context, filter MovementFilter) ([]Movement, error)
}

// SQLiteRepository implements Repository against the embedded SQLite store.
type SQLiteRepository struct {
	db *database.DB
}

// NewSQLiteRepository creates a new SQLite-backed repository.
// The db parameter should be an open connection with the schema created.
func NewSQLiteRepository(db *database.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// queryTable runs a query and shapes the result into a Table, keeping the
// engine's natural row order.
func (r *SQLiteRepository) queryTable(ctx context.Context, query string, args ...any) (*Table, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTable(rows)
}

// scanTable reads all rows into a Table.
func scanTable(rows *sql.Rows) (*Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading result columns: %w", err)
	}

	table := &Table{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		table.Rows = append(table.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return table, nil
}

// nullableString stores empty strings as NULL, so optional fields (theme,
// sub_type) don't pollute distinct-value lookups with blanks.
func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// isUniqueConstraintError checks if an error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint")
}
