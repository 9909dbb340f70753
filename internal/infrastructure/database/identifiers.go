package database

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidIdentifier is returned when a table or column name is not part
// of the known schema. It indicates a programming defect rather than bad
// user input: identifiers must only ever come from fixed enumerations, and
// this guard is the fail-closed chokepoint that blocks anything else.
var ErrInvalidIdentifier = errors.New("database: invalid identifier")

// ColumnInfo describes one column of a table, as reported by the schema catalog.
type ColumnInfo struct {
	Name    string
	Type    string
	NotNull bool

	// PK is the 1-based position of the column within the primary key,
	// or 0 if the column is not part of the primary key.
	PK int
}

// TableNames returns the names of all user tables in the database,
// read from the live schema catalog (sqlite_master). Deriving the list
// from the catalog rather than a hardcoded slice means the whitelist
// follows the schema if it evolves.
func (db *DB) TableNames(ctx context.Context) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'",
	)
	if err != nil {
		return nil, fmt.Errorf("querying table names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating table names: %w", err)
	}
	return names, nil
}

// TableInfo returns column metadata for the given table.
// The table name is validated before it reaches the pragma, since pragmas
// cannot bind parameters.
func (db *DB) TableInfo(ctx context.Context, table string) ([]ColumnInfo, error) {
	if err := db.ValidateTableName(ctx, table); err != nil {
		return nil, err
	}
	return db.tableInfoOf(ctx, table)
}

// ColumnNames returns the column names of the given table.
func (db *DB) ColumnNames(ctx context.Context, table string) ([]string, error) {
	info, err := db.TableInfo(ctx, table)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(info))
	for i, column := range info {
		names[i] = column.Name
	}
	return names, nil
}

// ValidateTableName fails with ErrInvalidIdentifier unless name is exactly
// one of the known table names.
//
// Parameter binding protects values but not identifiers, so any code path
// that splices a table name into SQL must call this first. Validation
// failure always blocks execution; it is never logged-and-continued.
func (db *DB) ValidateTableName(ctx context.Context, name string) error {
	tables, err := db.TableNames(ctx)
	if err != nil {
		return err
	}

	for _, table := range tables {
		if table == name {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown table %q", ErrInvalidIdentifier, name)
}

// ValidateColumnNames fails with ErrInvalidIdentifier unless every given
// name appears among the columns of at least one known table.
func (db *DB) ValidateColumnNames(ctx context.Context, names []string) error {
	tables, err := db.TableNames(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]struct{})
	for _, table := range tables {
		columns, err := db.tableInfoOf(ctx, table)
		if err != nil {
			return err
		}
		for _, column := range columns {
			known[column.Name] = struct{}{}
		}
	}

	for _, name := range names {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("%w: unknown column %q", ErrInvalidIdentifier, name)
		}
	}
	return nil
}

// tableInfoOf reads column metadata for a table already known to exist.
// Internal variant that skips re-validation, for callers whose table name
// came straight from the catalog.
func (db *DB) tableInfoOf(ctx context.Context, table string) ([]ColumnInfo, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("querying columns of %s: %w", table, err)
	}
	defer rows.Close()

	var info []ColumnInfo
	for rows.Next() {
		var (
			cid        int
			column     ColumnInfo
			notNull    int
			defaultVal any
		)
		if err := rows.Scan(&cid, &column.Name, &column.Type, &notNull, &defaultVal, &column.PK); err != nil {
			return nil, fmt.Errorf("scanning column info: %w", err)
		}
		column.NotNull = notNull != 0
		info = append(info, column)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column info: %w", err)
	}
	return info, nil
}
