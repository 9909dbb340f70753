package inventory

import "strings"

// DisplayColumnName converts a raw storage column name into the display
// label the UI expects: underscores become spaces, each word is
// title-cased, then the substring "Id" becomes "ID".
//
//	product_id        -> "Product ID"
//	low_stock_warning -> "Low Stock Warning"
//
// This exact transformation is part of the boundary contract with the
// presentation layer and must not change.
func DisplayColumnName(name string) string {
	spaced := strings.ReplaceAll(name, "_", " ")
	titled := titleCase(spaced)
	return strings.ReplaceAll(titled, "Id", "ID")
}

// displayColumnNames maps DisplayColumnName over a column list.
func displayColumnNames(names []string) []string {
	display := make([]string, len(names))
	for i, name := range names {
		display[i] = DisplayColumnName(name)
	}
	return display
}

// titleCase upper-cases the first letter of each space-separated word and
// lower-cases the rest, like Python's str.title() which the original UI
// contract was built on.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
