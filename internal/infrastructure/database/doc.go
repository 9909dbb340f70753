// Package database provides SQLite connectivity for the Stockroom inventory store.
//
// This package manages:
//   - The single database connection for the process lifetime
//   - Idempotent schema creation for the inventory tables
//   - Foreign key enforcement (MadeUsing cascade deletes)
//   - Identifier whitelist validation against the live schema catalog
//
// Security Considerations:
//   - All values are bound as ? parameters (no SQL injection via values)
//   - Table and column names cannot be parameter-bound, so any dynamic
//     identifier must pass ValidateTableName / ValidateColumnNames before
//     it is spliced into a statement. Validation is fail-closed.
//   - Database file permissions are set to 0600 (owner read/write only)
//
// Usage:
//
//	db, err := database.Open(database.Config{Path: "data/inventory.db"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	if err := db.InitSchema(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Tests open an in-memory instance instead:
//
//	db, err := database.Open(database.Config{InMemory: true})
package database
