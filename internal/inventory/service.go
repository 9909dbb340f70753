package inventory

import (
	"context"
	"fmt"
)

// Logger defines the logging interface used by the Service.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Service is the presenter-facing surface of the inventory core.
//
// It wraps a Repository and adds the two boundary obligations the UI
// relies on: every tabular result comes back with humanized column labels,
// and every successful mutation triggers the change callback so the UI
// can re-render. Errors pass through untouched: the service never swallows
// or retries, the caller decides user-facing behaviour.
//
// Calls are synchronous and block until the store completes; there is no
// background work.
type Service struct {
	repo     Repository
	logger   Logger
	onChange func()
}

// NewService creates a service over the given repository.
func NewService(repo Repository) *Service {
	return &Service{
		repo:   repo,
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the service.
func (s *Service) SetLogger(logger Logger) {
	s.logger = logger
}

// SetOnChange registers a callback invoked after every successful mutation.
// The UI uses it to re-render; passing nil disables notification.
func (s *Service) SetOnChange(fn func()) {
	s.onChange = fn
}

// notify invokes the change callback, if any.
func (s *Service) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// GetFilteredItems returns products or components matching the filters,
// with display-ready column labels.
func (s *Service) GetFilteredItems(ctx context.Context, kind ItemKind, filters Filters) (*Table, error) {
	table, err := s.repo.FilterItems(ctx, kind, filters)
	if err != nil {
		return nil, err
	}
	table.Columns = displayColumnNames(table.Columns)
	return table, nil
}

// GetLowStockItems returns low-stock rows for the requested kinds, with
// display-ready column labels.
func (s *Service) GetLowStockItems(ctx context.Context, includeProducts, includeComponents bool) (*Table, error) {
	table, err := s.repo.LowStockItems(ctx, includeProducts, includeComponents)
	if err != nil {
		return nil, err
	}
	table.Columns = displayColumnNames(table.Columns)
	return table, nil
}

// Dropdown lookups. Each returns the distinct non-empty values of one
// column, for the filter bar and the add-item forms.

// DesignNames returns all design names.
func (s *Service) DesignNames(ctx context.Context) ([]string, error) {
	return s.repo.DistinctValues(ctx, "Design", "name")
}

// Themes returns all design themes.
func (s *Service) Themes(ctx context.Context) ([]string, error) {
	return s.repo.DistinctValues(ctx, "Design", "theme")
}

// ProductTypeNames returns all product type names.
func (s *Service) ProductTypeNames(ctx context.Context) ([]string, error) {
	return s.repo.DistinctValues(ctx, "ProductType", "name")
}

// Types returns all product type classifications (earring, necklace, ...).
func (s *Service) Types(ctx context.Context) ([]string, error) {
	return s.repo.DistinctValues(ctx, "ProductType", "type")
}

// SubTypes returns all product sub-type classifications.
func (s *Service) SubTypes(ctx context.Context) ([]string, error) {
	return s.repo.DistinctValues(ctx, "ProductType", "sub_type")
}

// Colours returns all product colours.
func (s *Service) Colours(ctx context.Context) ([]string, error) {
	return s.repo.DistinctValues(ctx, "Product", "colour")
}

// ComponentNames returns all component names.
func (s *Service) ComponentNames(ctx context.Context) ([]string, error) {
	return s.repo.DistinctValues(ctx, "Component", "name")
}

// ComponentName resolves a component ID to its name.
func (s *Service) ComponentName(ctx context.Context, componentID int64) (string, error) {
	return s.repo.ComponentName(ctx, componentID)
}

// ComponentsOfProduct returns a product's bill of materials.
func (s *Service) ComponentsOfProduct(ctx context.Context, productID int64) ([]ComponentUse, error) {
	return s.repo.ComponentsOfProduct(ctx, productID)
}

// Movements returns recent stock movement ledger entries.
func (s *Service) Movements(ctx context.Context, filter MovementFilter) ([]Movement, error) {
	return s.repo.Movements(ctx, filter)
}

// SaveNewDesign stores a new design and notifies the UI.
func (s *Service) SaveNewDesign(ctx context.Context, name, theme string) error {
	id, err := s.repo.InsertDesign(ctx, name, theme)
	if err != nil {
		return err
	}
	s.logger.Info("design added", "id", id, "name", name)
	s.notify()
	return nil
}

// SaveNewProductType stores a new product type and notifies the UI.
func (s *Service) SaveNewProductType(ctx context.Context, name, productType, subType string) error {
	id, err := s.repo.InsertProductType(ctx, name, productType, subType)
	if err != nil {
		return err
	}
	s.logger.Info("product type added", "id", id, "name", name)
	s.notify()
	return nil
}

// SaveNewComponent stores a new component and notifies the UI.
func (s *Service) SaveNewComponent(ctx context.Context, name string, stock, lowStockWarning int) error {
	id, err := s.repo.InsertComponent(ctx, name, stock, lowStockWarning)
	if err != nil {
		return err
	}
	s.logger.Info("component added", "id", id, "name", name)
	s.notify()
	return nil
}

// SaveNewProduct stores a new product with its bill of materials and
// notifies the UI.
func (s *Service) SaveNewProduct(ctx context.Context, product NewProduct) error {
	id, err := s.repo.InsertProduct(ctx, product)
	if err != nil {
		return err
	}
	s.logger.Info("product added", "id", id, "name", product.Name,
		"components", len(product.Components))
	s.notify()
	return nil
}

// AdjustStock changes one item's stock by the given delta and notifies the UI.
func (s *Service) AdjustStock(ctx context.Context, kind ItemKind, id int64, delta int) error {
	if err := s.repo.AdjustStock(ctx, kind, id, delta); err != nil {
		return err
	}
	s.logger.Info("stock adjusted", "kind", string(kind), "id", id, "delta", delta)
	s.notify()
	return nil
}

// AdjustStockCascading changes a product's stock and the stock of every
// component it is made from, then notifies the UI.
func (s *Service) AdjustStockCascading(ctx context.Context, productID int64, delta int) error {
	if err := s.repo.AdjustProductStockCascading(ctx, productID, delta); err != nil {
		return err
	}
	s.logger.Info("stock adjusted with components", "product_id", productID, "delta", delta)
	s.notify()
	return nil
}

// DeleteProduct removes a product and notifies the UI.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product deleted", "id", id)
	s.notify()
	return nil
}

// DeleteComponent removes a component and notifies the UI.
func (s *Service) DeleteComponent(ctx context.Context, id int64) error {
	if err := s.repo.DeleteComponent(ctx, id); err != nil {
		return err
	}
	s.logger.Info("component deleted", "id", id)
	s.notify()
	return nil
}

// Seed loads development rows through the generic insert path.
// Each entry names a table and the values for its insertable columns.
func (s *Service) Seed(ctx context.Context, rows map[string][][]any, order []string) error {
	for _, table := range order {
		for _, values := range rows[table] {
			if err := s.repo.InsertRow(ctx, table, values); err != nil {
				return fmt.Errorf("seeding %s: %w", table, err)
			}
		}
	}
	s.notify()
	return nil
}
