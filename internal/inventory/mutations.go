package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/quietloom/stockroom/internal/infrastructure/database"
)

// InsertDesign appends a design with an auto-assigned ID.
// Theme is optional; an empty theme is stored as NULL.
func (r *SQLiteRepository) InsertDesign(ctx context.Context, name, theme string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO Design (name, theme) VALUES (?, ?)",
		name, nullableString(theme),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return 0, fmt.Errorf("%w: design %q", ErrDuplicateName, name)
		}
		return 0, fmt.Errorf("inserting design: %w", err)
	}
	return lastInsertID(result)
}

// InsertProductType appends a product type with an auto-assigned ID.
// SubType is optional; an empty sub-type is stored as NULL.
func (r *SQLiteRepository) InsertProductType(ctx context.Context, name, productType, subType string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO ProductType (name, type, sub_type) VALUES (?, ?, ?)",
		name, productType, nullableString(subType),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return 0, fmt.Errorf("%w: product type %q", ErrDuplicateName, name)
		}
		return 0, fmt.Errorf("inserting product type: %w", err)
	}
	return lastInsertID(result)
}

// InsertComponent appends a component with an auto-assigned ID.
func (r *SQLiteRepository) InsertComponent(ctx context.Context, name string, stock, lowStockWarning int) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO Component (name, stock, low_stock_warning) VALUES (?, ?, ?)",
		name, stock, lowStockWarning,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return 0, fmt.Errorf("%w: component %q", ErrDuplicateName, name)
		}
		return 0, fmt.Errorf("inserting component: %w", err)
	}
	return lastInsertID(result)
}

// InsertProduct inserts a product and its bill of materials.
//
// The design, product type, and component names are resolved to their
// surrogate IDs; any name that does not resolve fails the whole insert
// with ErrReferenceNotFound. The product row and all MadeUsing rows land
// in one transaction: either the product arrives complete with its bill
// of materials, or nothing is written.
func (r *SQLiteRepository) InsertProduct(ctx context.Context, product NewProduct) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	designID, err := resolveName(ctx, tx, "Design", "design_id", product.DesignName)
	if err != nil {
		return 0, err
	}
	productTypeID, err := resolveName(ctx, tx, "ProductType", "product_type_id", product.ProductTypeName)
	if err != nil {
		return 0, err
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO Product (name, colour, stock, low_stock_warning, design_id, product_type_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		product.Name, product.Colour, product.Stock, product.LowStockWarning,
		designID, productTypeID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return 0, fmt.Errorf("%w: product %q", ErrDuplicateName, product.Name)
		}
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	productID, err := lastInsertID(result)
	if err != nil {
		return 0, err
	}

	for _, line := range product.Components {
		componentID, err := resolveName(ctx, tx, "Component", "component_id", line.ComponentName)
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO MadeUsing (product_id, component_id, num_components_used) VALUES (?, ?, ?)",
			productID, componentID, line.Quantity,
		); err != nil {
			return 0, fmt.Errorf("inserting bill of materials line %q: %w", line.ComponentName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing product insert: %w", err)
	}
	return productID, nil
}

// InsertRow appends one row to the named table.
//
// The table name passes the identifier guard, and the column list is
// derived from the live schema catalog: every column except a
// single-column INTEGER primary key (which SQLite auto-assigns) must have
// a value, in catalog order. Used by the development seed data loader.
func (r *SQLiteRepository) InsertRow(ctx context.Context, table string, values []any) error {
	info, err := r.db.TableInfo(ctx, table)
	if err != nil {
		return err
	}

	columns := insertableColumns(info)
	if len(values) != len(columns) {
		return fmt.Errorf("%w: table %s needs %d values, got %d",
			ErrValueCountMismatch, table, len(columns), len(values))
	}

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, column := range columns {
		quoted[i] = fmt.Sprintf("%q", column)
		placeholders[i] = "?"
	}

	query := fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		table, strings.Join(quoted, ", "), strings.Join(placeholders, ", "))

	if _, err := r.db.ExecContext(ctx, query, values...); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: %s row", ErrDuplicateName, table)
		}
		return fmt.Errorf("inserting %s row: %w", table, err)
	}
	return nil
}

// AdjustStock applies a signed delta to one item's stock and records the
// movement in the same transaction. No floor is enforced: stock may go
// negative, which is the caller's responsibility to prevent or accept.
func (r *SQLiteRepository) AdjustStock(ctx context.Context, kind ItemKind, id int64, delta int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	if err := adjustStockInTx(ctx, tx, kind, id, delta); err != nil {
		return err
	}
	if err := recordMovement(ctx, tx, kind, id, delta, MovementReasonAdjust); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing stock adjustment: %w", err)
	}
	return nil
}

// AdjustProductStockCascading applies delta to the product's own stock and
// delta*quantity to every component in its bill of materials.
//
// Reducing a product by N units consumes N times each component's per-unit
// usage. All updates and their ledger entries land in one transaction:
// a fault partway through leaves every stock level untouched.
func (r *SQLiteRepository) AdjustProductStockCascading(ctx context.Context, productID int64, delta int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	// Read the bill of materials inside the transaction so the component
	// set can't shift under the updates.
	rows, err := tx.QueryContext(ctx,
		"SELECT component_id, num_components_used FROM MadeUsing WHERE product_id = ?",
		productID,
	)
	if err != nil {
		return fmt.Errorf("querying bill of materials: %w", err)
	}

	var uses []ComponentUse
	for rows.Next() {
		var use ComponentUse
		if err := rows.Scan(&use.ComponentID, &use.Quantity); err != nil {
			rows.Close()
			return fmt.Errorf("scanning bill of materials: %w", err)
		}
		uses = append(uses, use)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterating bill of materials: %w", err)
	}
	rows.Close()

	if err := adjustStockInTx(ctx, tx, KindProduct, productID, delta); err != nil {
		return err
	}
	if err := recordMovement(ctx, tx, KindProduct, productID, delta, MovementReasonAdjust); err != nil {
		return err
	}

	for _, use := range uses {
		componentDelta := delta * use.Quantity
		if err := adjustStockInTx(ctx, tx, KindComponent, use.ComponentID, componentDelta); err != nil {
			return err
		}
		if err := recordMovement(ctx, tx, KindComponent, use.ComponentID, componentDelta, MovementReasonCascade); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cascading adjustment: %w", err)
	}
	return nil
}

// DeleteProduct removes one product. Its MadeUsing rows are removed by the
// schema's ON DELETE CASCADE, not by application code.
func (r *SQLiteRepository) DeleteProduct(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, KindProduct, id)
}

// DeleteComponent removes one component. Its MadeUsing rows are removed by
// the schema's ON DELETE CASCADE, not by application code.
func (r *SQLiteRepository) DeleteComponent(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, KindComponent, id)
}

// deleteByID removes exactly one row of the given kind.
func (r *SQLiteRepository) deleteByID(ctx context.Context, kind ItemKind, id int64) error {
	idColumn, err := kind.idColumn()
	if err != nil {
		return err
	}

	// Kind doubles as the table name; both identifiers come from the
	// ItemKind enumeration, never from input.
	query := fmt.Sprintf("DELETE FROM %q WHERE %q = ?", string(kind), idColumn)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", strings.ToLower(string(kind)), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %d", ErrItemNotFound, strings.ToLower(string(kind)), id)
	}
	return nil
}

// adjustStockInTx applies one stock delta within a transaction.
func adjustStockInTx(ctx context.Context, tx *sql.Tx, kind ItemKind, id int64, delta int) error {
	idColumn, err := kind.idColumn()
	if err != nil {
		return err
	}

	query := fmt.Sprintf("UPDATE %q SET stock = stock + ? WHERE %q = ?", string(kind), idColumn)

	result, err := tx.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("updating %s stock: %w", strings.ToLower(string(kind)), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %d", ErrItemNotFound, strings.ToLower(string(kind)), id)
	}
	return nil
}

// resolveName looks up the surrogate ID for a human-readable name within a
// transaction. A name that does not resolve is an ErrReferenceNotFound,
// surfaced instead of a raw engine fault.
func resolveName(ctx context.Context, tx *sql.Tx, table, idColumn, name string) (int64, error) {
	// Identifiers here come from the fixed call sites above, never from input.
	query := fmt.Sprintf("SELECT %q FROM %q WHERE name = ?", idColumn, table)

	var id int64
	err := tx.QueryRowContext(ctx, query, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s %q", ErrReferenceNotFound, strings.ToLower(table), name)
	}
	if err != nil {
		return 0, fmt.Errorf("resolving %s name: %w", strings.ToLower(table), err)
	}
	return id, nil
}

// lastInsertID extracts the auto-assigned row ID from an insert result.
func lastInsertID(result sql.Result) (int64, error) {
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	return id, nil
}

// insertableColumns returns the columns a caller must supply values for:
// everything except a single-column INTEGER primary key, which SQLite
// assigns automatically. Composite keys (MadeUsing) are kept in full.
func insertableColumns(info []database.ColumnInfo) []string {
	pkCount := 0
	for _, column := range info {
		if column.PK > 0 {
			pkCount++
		}
	}

	var columns []string
	for _, column := range info {
		if pkCount == 1 && column.PK == 1 && strings.EqualFold(column.Type, "INTEGER") {
			continue
		}
		columns = append(columns, column.Name)
	}
	return columns
}
