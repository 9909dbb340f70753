package inventory

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildWhereClause(t *testing.T) {
	t.Run("no active filters yields no clause", func(t *testing.T) {
		clause, args, err := buildWhereClause(productFilterSpecs, Filters{})
		if err != nil {
			t.Fatalf("buildWhereClause() error = %v", err)
		}
		if clause != "" || len(args) != 0 {
			t.Errorf("got clause %q with %d args, want empty", clause, len(args))
		}
	})

	t.Run("empty values are inactive", func(t *testing.T) {
		clause, _, err := buildWhereClause(productFilterSpecs, Filters{
			FilterColour: "",
			FilterTheme:  "",
		})
		if err != nil {
			t.Fatalf("buildWhereClause() error = %v", err)
		}
		if clause != "" {
			t.Errorf("got clause %q, want empty", clause)
		}
	})

	t.Run("substring match wraps the value in wildcards", func(t *testing.T) {
		clause, args, err := buildWhereClause(productFilterSpecs, Filters{
			FilterNameSearch: "neck",
		})
		if err != nil {
			t.Fatalf("buildWhereClause() error = %v", err)
		}
		if !strings.Contains(clause, "Product.name LIKE ?") {
			t.Errorf("clause = %q, want a LIKE on Product.name", clause)
		}
		if len(args) != 1 || args[0] != "%neck%" {
			t.Errorf("args = %v, want [%%neck%%]", args)
		}
	})

	t.Run("active filters join with AND", func(t *testing.T) {
		clause, args, err := buildWhereClause(productFilterSpecs, Filters{
			FilterColour: "black",
			FilterTheme:  "halloween",
		})
		if err != nil {
			t.Fatalf("buildWhereClause() error = %v", err)
		}
		if !strings.HasPrefix(clause, " WHERE ") {
			t.Errorf("clause = %q, want WHERE prefix", clause)
		}
		if strings.Count(clause, " AND ") != 1 {
			t.Errorf("clause = %q, want exactly one AND", clause)
		}
		if len(args) != 2 {
			t.Errorf("got %d args, want 2", len(args))
		}
	})

	t.Run("stock level parses as integer", func(t *testing.T) {
		_, args, err := buildWhereClause(productFilterSpecs, Filters{
			FilterStockLevel: " 7 ",
		})
		if err != nil {
			t.Fatalf("buildWhereClause() error = %v", err)
		}
		if len(args) != 1 || args[0] != 7 {
			t.Errorf("args = %v, want [7]", args)
		}
	})

	t.Run("malformed stock level", func(t *testing.T) {
		_, _, err := buildWhereClause(productFilterSpecs, Filters{
			FilterStockLevel: "seven",
		})
		if !errors.Is(err, ErrNotAnInteger) {
			t.Errorf("buildWhereClause() error = %v, want ErrNotAnInteger", err)
		}
	})

	t.Run("keys without a component column are ignored", func(t *testing.T) {
		clause, args, err := buildWhereClause(componentFilterSpecs, Filters{
			FilterTheme:      "halloween",
			FilterNameSearch: "chain",
		})
		if err != nil {
			t.Fatalf("buildWhereClause() error = %v", err)
		}
		if strings.Contains(clause, "theme") {
			t.Errorf("clause = %q leaked a product-only column", clause)
		}
		if len(args) != 1 {
			t.Errorf("got %d args, want 1 (name search only)", len(args))
		}
	})
}

func TestParseInt(t *testing.T) {
	if n, err := ParseInt("42"); err != nil || n != 42 {
		t.Errorf("ParseInt(42) = %d, %v", n, err)
	}
	if n, err := ParseInt(" -3 "); err != nil || n != -3 {
		t.Errorf("ParseInt(-3 with spaces) = %d, %v", n, err)
	}
	for _, bad := range []string{"", "abc", "1.5", "1e3"} {
		if _, err := ParseInt(bad); !errors.Is(err, ErrNotAnInteger) {
			t.Errorf("ParseInt(%q) error = %v, want ErrNotAnInteger", bad, err)
		}
	}
}

func TestItemKindIDColumn(t *testing.T) {
	if col, err := KindProduct.idColumn(); err != nil || col != "product_id" {
		t.Errorf("KindProduct.idColumn() = %q, %v", col, err)
	}
	if col, err := KindComponent.idColumn(); err != nil || col != "component_id" {
		t.Errorf("KindComponent.idColumn() = %q, %v", col, err)
	}
	if _, err := ItemKind("Design").idColumn(); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("idColumn() error = %v, want ErrUnknownKind", err)
	}
}
