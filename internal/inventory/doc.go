// Package inventory provides the query and mutation facade over the
// Stockroom database.
//
// # Architecture
//
// Two layers sit between the UI and the store:
//
//   - Repository (repository.go, queries.go, mutations.go): translates
//     filter/insert/update/delete intents into parameterized SQL against
//     the embedded SQLite database and maps engine faults onto the domain
//     error taxonomy (ErrDuplicateName, ErrReferenceNotFound, ...).
//   - Service (service.go): the presenter-facing surface. Humanizes column
//     names for display, exposes the dropdown lookups, and fires the
//     change callback after every successful mutation so the UI re-renders.
//
// # Key Types
//
//   - ItemKind: Product or Component, the two stockable kinds
//   - Filters: sparse filter-key → value mapping for FilterItems
//   - Table: {column names, data rows} tabular result shape
//   - NewProduct / BOMLine: a product insert with its bill of materials
//   - Movement: one stock movement ledger entry
//
// # Safety
//
// Values are always bound as parameters. Table and column names are only
// ever taken from fixed enumerations or the static filterSpec tables inside this
// package; the few operations that accept identifiers from callers
// (DistinctValues, InsertRow) pass them through the database package's
// whitelist guard before any SQL is built.
//
// Multi-row operations (InsertProduct, AdjustProductStockCascading) run in
// a single transaction: a fault partway through commits nothing.
//
// # Usage
//
//	repo := inventory.NewSQLiteRepository(db)
//	svc := inventory.NewService(repo)
//	svc.SetLogger(log)
//	svc.SetOnChange(window.Refresh)
//
//	items, err := svc.GetFilteredItems(ctx, inventory.KindProduct, inventory.Filters{
//	    inventory.FilterTheme: "halloween",
//	})
package inventory
