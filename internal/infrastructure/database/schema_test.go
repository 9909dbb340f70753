package database

import (
	"context"
	"testing"
)

func TestInitSchema_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	tables, err := db.TableNames(ctx)
	if err != nil {
		t.Fatalf("TableNames() error = %v", err)
	}

	want := []string{"Design", "ProductType", "Product", "Component", "MadeUsing", "StockMovement"}
	got := make(map[string]bool, len(tables))
	for _, table := range tables {
		got[table] = true
	}

	for _, table := range want {
		if !got[table] {
			t.Errorf("table %q was not created", table)
		}
	}
	if len(tables) != len(want) {
		t.Errorf("TableNames() returned %d tables, want %d: %v", len(tables), len(want), tables)
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// Insert a row, re-run schema creation, and verify the row survives.
	_, err := db.ExecContext(ctx,
		"INSERT INTO Design (name, theme) VALUES (?, ?)", "Web", "halloween")
	if err != nil {
		t.Fatalf("inserting design: %v", err)
	}

	if err := db.InitSchema(ctx); err != nil {
		t.Fatalf("second InitSchema() error = %v", err)
	}
	if err := db.InitSchema(ctx); err != nil {
		t.Fatalf("third InitSchema() error = %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM Design").Scan(&count); err != nil {
		t.Fatalf("counting designs: %v", err)
	}
	if count != 1 {
		t.Errorf("design count after re-init = %d, want 1", count)
	}
}

func TestSchema_MadeUsingCascade(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// Minimal product with one component association
	mustExec := func(query string, args ...any) {
		t.Helper()
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			t.Fatalf("exec %q: %v", query, err)
		}
	}

	mustExec("INSERT INTO Design (name, theme) VALUES (?, ?)", "Heart", nil)
	mustExec("INSERT INTO ProductType (name, type, sub_type) VALUES (?, ?, ?)", "Regular earrings", "earring", nil)
	mustExec("INSERT INTO Product (name, colour, stock, low_stock_warning, design_id, product_type_id) VALUES (?, ?, ?, ?, 1, 1)",
		"Heart earrings - pink", "pink", 2, 1)
	mustExec("INSERT INTO Component (name, stock, low_stock_warning) VALUES (?, ?, ?)", "Hook", 50, 10)
	mustExec("INSERT INTO MadeUsing (product_id, component_id, num_components_used) VALUES (1, 1, 2)")

	// Deleting the product must cascade to MadeUsing without touching Component
	mustExec("DELETE FROM Product WHERE product_id = 1")

	var associations int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM MadeUsing").Scan(&associations); err != nil {
		t.Fatalf("counting associations: %v", err)
	}
	if associations != 0 {
		t.Errorf("MadeUsing rows after product delete = %d, want 0", associations)
	}

	var components int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM Component").Scan(&components); err != nil {
		t.Fatalf("counting components: %v", err)
	}
	if components != 1 {
		t.Errorf("Component rows after product delete = %d, want 1", components)
	}
}

func TestSchema_UniqueNames(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx,
		"INSERT INTO Component (name, stock, low_stock_warning) VALUES (?, ?, ?)", "Chain", 8, 5); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	_, err := db.ExecContext(ctx,
		"INSERT INTO Component (name, stock, low_stock_warning) VALUES (?, ?, ?)", "Chain", 3, 1)
	if err == nil {
		t.Fatal("duplicate component name accepted, want UNIQUE constraint failure")
	}
}
