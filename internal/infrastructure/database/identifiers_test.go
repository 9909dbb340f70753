package database

import (
	"context"
	"errors"
	"testing"
)

func TestValidateTableName(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	valid := []string{"Design", "ProductType", "Product", "Component", "MadeUsing", "StockMovement"}
	for _, name := range valid {
		t.Run("accepts "+name, func(t *testing.T) {
			if err := db.ValidateTableName(ctx, name); err != nil {
				t.Errorf("ValidateTableName(%q) error = %v", name, err)
			}
		})
	}

	invalid := []string{
		"123",
		"£$%",
		"product", // case matters: the catalog says Product
		"Product; DROP TABLE Product",
		"",
	}
	for _, name := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			err := db.ValidateTableName(ctx, name)
			if !errors.Is(err, ErrInvalidIdentifier) {
				t.Errorf("ValidateTableName(%q) error = %v, want ErrInvalidIdentifier", name, err)
			}
		})
	}
}

func TestValidateColumnNames(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	t.Run("accepts known columns", func(t *testing.T) {
		names := []string{"product_id", "name", "sub_type", "stock", "low_stock_warning"}
		if err := db.ValidateColumnNames(ctx, names); err != nil {
			t.Errorf("ValidateColumnNames(%v) error = %v", names, err)
		}
	})

	t.Run("rejects a single unknown name in the batch", func(t *testing.T) {
		names := []string{"name", "1=1"}
		err := db.ValidateColumnNames(ctx, names)
		if !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("ValidateColumnNames(%v) error = %v, want ErrInvalidIdentifier", names, err)
		}
	})

	invalid := [][]string{
		{"123"},
		{"£$%"},
		{"1; DROP TABLE Product"},
	}
	for _, names := range invalid {
		t.Run("rejects "+names[0], func(t *testing.T) {
			err := db.ValidateColumnNames(ctx, names)
			if !errors.Is(err, ErrInvalidIdentifier) {
				t.Errorf("ValidateColumnNames(%v) error = %v, want ErrInvalidIdentifier", names, err)
			}
		})
	}

	t.Run("empty list is valid", func(t *testing.T) {
		if err := db.ValidateColumnNames(ctx, nil); err != nil {
			t.Errorf("ValidateColumnNames(nil) error = %v", err)
		}
	})
}

func TestTableNames_ReflectsLiveCatalog(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// A table added after startup shows up without any code change.
	if _, err := db.ExecContext(ctx, "CREATE TABLE Supplier (supplier_id INTEGER PRIMARY KEY, name TEXT)"); err != nil {
		t.Fatalf("creating table: %v", err)
	}

	if err := db.ValidateTableName(ctx, "Supplier"); err != nil {
		t.Errorf("ValidateTableName(Supplier) error = %v, want nil after live schema change", err)
	}
	if err := db.ValidateColumnNames(ctx, []string{"supplier_id"}); err != nil {
		t.Errorf("ValidateColumnNames(supplier_id) error = %v, want nil after live schema change", err)
	}
}

func TestColumnNames(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	columns, err := db.ColumnNames(ctx, "MadeUsing")
	if err != nil {
		t.Fatalf("ColumnNames() error = %v", err)
	}

	want := map[string]bool{"product_id": true, "component_id": true, "num_components_used": true}
	if len(columns) != len(want) {
		t.Fatalf("ColumnNames() = %v, want %d columns", columns, len(want))
	}
	for _, column := range columns {
		if !want[column] {
			t.Errorf("unexpected column %q", column)
		}
	}

	t.Run("rejects unknown table", func(t *testing.T) {
		_, err := db.ColumnNames(ctx, "NoSuchTable")
		if !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("ColumnNames(NoSuchTable) error = %v, want ErrInvalidIdentifier", err)
		}
	})
}
