package entity

import (
	"strings"
	"time"
)

// Product is an item offered for sale by a Business. Its name is unique within
// the owning business; NamePrefixes derives the search index stored alongside it.
type Product struct {
	ID         string
	BusinessID string
	Name       string
	Cost       int64 // Purchase cost in currency minor units.
	Price      int64 // Selling price in currency minor units.
	Stock      int64
	ImageURL   string
	Prefixes   []string // Lowercase prefixes of Name, maintained by the product usecase.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProductPatch carries a partial update for a Product. A nil field means
// "leave unchanged". When Name is set, Prefixes must be set too; the index is
// always rebuilt wholesale, never patched incrementally.
type ProductPatch struct {
	Name      *string
	Prefixes  []string
	Cost      *int64
	Price     *int64
	Stock     *int64
	ImageURL  *string
	UpdatedAt time.Time
}

// NamePrefixes returns every leading substring of name, lowercased, shortest
// first. "Milk" yields ["m", "mi", "mil", "milk"]; the empty string yields nil.
// Prefixes are built per rune so multi-byte names index correctly.
func NamePrefixes(name string) []string {
	runes := []rune(strings.ToLower(name))
	if len(runes) == 0 {
		return nil
	}

	prefixes := make([]string, 0, len(runes))
	for i := 1; i <= len(runes); i++ {
		prefixes = append(prefixes, string(runes[:i]))
	}

	return prefixes
}
