package entity

import "time"

// CartItem is a single line of the de-normalized shopping cart: it exists as
// its own document, unattached to any transaction until a checkout claims it.
//
// Assignment state lives in TransactionID: empty means the item is still in
// the cart, non-empty means it has been claimed by that transaction. The claim
// happens at most once and is never reverted.
type CartItem struct {
	ID            string
	BusinessID    string
	TransactionID string // Empty while unassigned.
	Name          string
	UnitPrice     int64 // Price per unit in currency minor units.
	Count         int64 // Always >= 1 while the item exists.
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Unassigned reports whether the item is still available for checkout.
func (i *CartItem) Unassigned() bool {
	return i.TransactionID == ""
}
