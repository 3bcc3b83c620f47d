// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Business is the root aggregate of the system. Every product, cart item and
// transaction lives in a subcollection owned by exactly one Business.
type Business struct {
	ID         string    // Short random identifier, unique across all businesses.
	Name       string    // Trading name shown on receipts.
	Address    string    // Street address.
	Province   string
	City       string
	District   string
	PostalCode string
	OwnerID    string // Subject id of the user who created the business, from the identity provider.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BusinessPatch carries a partial update for a Business. A nil field means
// "leave unchanged"; UpdatedAt is always written.
type BusinessPatch struct {
	Name       *string
	Address    *string
	Province   *string
	City       *string
	District   *string
	PostalCode *string
	UpdatedAt  time.Time
}
