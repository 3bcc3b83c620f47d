package entity

import "time"

// Transaction is the immutable record produced by a checkout. Lines is a
// snapshot of the cart items claimed by this transaction, frozen at assembly
// time; the record is never updated or deleted after creation.
type Transaction struct {
	ID           string
	BusinessID   string
	Lines        []TransactionLine
	TotalPayment int64 // Amount tendered by the customer, as supplied by the caller.
	CreatedAt    time.Time
}

// TransactionLine is one claimed cart item frozen into a transaction.
type TransactionLine struct {
	ItemID        string
	Name          string
	Count         int64
	ExtendedPrice int64 // Unit price multiplied by count, in minor units.
}

// LineFromCartItem freezes a cart item into a transaction line. The extended
// price is exact integer arithmetic in minor units; no rounding is involved.
func LineFromCartItem(item *CartItem) TransactionLine {
	return TransactionLine{
		ItemID:        item.ID,
		Name:          item.Name,
		Count:         item.Count,
		ExtendedPrice: item.UnitPrice * item.Count,
	}
}
