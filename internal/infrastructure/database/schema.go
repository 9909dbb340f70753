package database

import (
	"context"
	"fmt"
)

// schemaStatements creates the inventory tables.
// Every statement is CREATE TABLE IF NOT EXISTS, so InitSchema can run on
// every startup without touching existing data.
//
// Naming follows the original inventory schema: CamelCase table names,
// snake_case columns, <table>_id surrogate keys.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS Design (
		design_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		theme TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS ProductType (
		product_type_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		type TEXT NOT NULL,
		sub_type TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS Product (
		product_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		colour TEXT NOT NULL,
		stock INTEGER NOT NULL,
		low_stock_warning INTEGER NOT NULL,
		design_id INTEGER NOT NULL,
		product_type_id INTEGER NOT NULL,
		FOREIGN KEY(design_id) REFERENCES Design(design_id),
		FOREIGN KEY(product_type_id) REFERENCES ProductType(product_type_id)
	)`,
	`CREATE TABLE IF NOT EXISTS Component (
		component_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		stock INTEGER NOT NULL,
		low_stock_warning INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS MadeUsing (
		product_id INTEGER NOT NULL,
		component_id INTEGER NOT NULL,
		num_components_used INTEGER NOT NULL,
		PRIMARY KEY(product_id, component_id),
		FOREIGN KEY(product_id) REFERENCES Product(product_id) ON DELETE CASCADE,
		FOREIGN KEY(component_id) REFERENCES Component(component_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS StockMovement (
		movement_id TEXT PRIMARY KEY,
		item_kind TEXT NOT NULL,
		item_id INTEGER NOT NULL,
		delta INTEGER NOT NULL,
		reason TEXT,
		created_at TEXT NOT NULL
	)`,
}

// InitSchema creates all inventory tables if they don't already exist.
//
// Calling InitSchema repeatedly against the same database is a no-op for
// existing tables and never alters stored data. The statements run inside
// one transaction so a partially created schema is never left behind.
//
// Deleting a Product or Component cascades deletion of its MadeUsing rows;
// this is enforced here by the schema (ON DELETE CASCADE) rather than by
// application code, so no caller can forget it. Foreign key enforcement
// itself is switched on by Open.
func (db *DB) InitSchema(ctx context.Context) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema: %w", err)
	}
	return nil
}
