// Package model defines the Firestore document shapes and their mapping to
// and from the pure domain entities.
package model

import (
	"time"

	"kasir/internal/domain/entity"
)

// BusinessDoc is the stored form of entity.Business.
type BusinessDoc struct {
	BusinessID string    `firestore:"businessId"`
	Name       string    `firestore:"name"`
	Address    string    `firestore:"address"`
	Province   string    `firestore:"province"`
	City       string    `firestore:"city"`
	District   string    `firestore:"district"`
	PostalCode string    `firestore:"postalCode"`
	OwnerID    string    `firestore:"ownerId"`
	CreatedAt  time.Time `firestore:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt"`
}

// FromBusinessDomain maps a domain business to its document form.
func FromBusinessDomain(b *entity.Business) *BusinessDoc {
	return &BusinessDoc{
		BusinessID: b.ID,
		Name:       b.Name,
		Address:    b.Address,
		Province:   b.Province,
		City:       b.City,
		District:   b.District,
		PostalCode: b.PostalCode,
		OwnerID:    b.OwnerID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// ToBusinessDomain maps the document form back to the domain entity.
func (d *BusinessDoc) ToBusinessDomain() *entity.Business {
	return &entity.Business{
		ID:         d.BusinessID,
		Name:       d.Name,
		Address:    d.Address,
		Province:   d.Province,
		City:       d.City,
		District:   d.District,
		PostalCode: d.PostalCode,
		OwnerID:    d.OwnerID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// ProductDoc is the stored form of entity.Product. Prefixes is the derived
// search index queried with an array-contains filter.
type ProductDoc struct {
	ProductID  string    `firestore:"productId"`
	BusinessID string    `firestore:"businessId"`
	Name       string    `firestore:"name"`
	Cost       int64     `firestore:"cost"`
	Price      int64     `firestore:"price"`
	Stock      int64     `firestore:"stock"`
	ImageURL   string    `firestore:"imageUrl"`
	Prefixes   []string  `firestore:"prefixes"`
	CreatedAt  time.Time `firestore:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt"`
}

// FromProductDomain maps a domain product to its document form.
func FromProductDomain(p *entity.Product) *ProductDoc {
	return &ProductDoc{
		ProductID:  p.ID,
		BusinessID: p.BusinessID,
		Name:       p.Name,
		Cost:       p.Cost,
		Price:      p.Price,
		Stock:      p.Stock,
		ImageURL:   p.ImageURL,
		Prefixes:   p.Prefixes,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToProductDomain maps the document form back to the domain entity.
func (d *ProductDoc) ToProductDomain() *entity.Product {
	return &entity.Product{
		ID:         d.ProductID,
		BusinessID: d.BusinessID,
		Name:       d.Name,
		Cost:       d.Cost,
		Price:      d.Price,
		Stock:      d.Stock,
		ImageURL:   d.ImageURL,
		Prefixes:   d.Prefixes,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// CartItemDoc is the stored form of entity.CartItem. TransactionID is the
// assignment state: empty means the item is still in the cart.
type CartItemDoc struct {
	ItemID        string    `firestore:"itemId"`
	BusinessID    string    `firestore:"businessId"`
	TransactionID string    `firestore:"transactionId"`
	Name          string    `firestore:"name"`
	UnitPrice     int64     `firestore:"unitPrice"`
	Count         int64     `firestore:"count"`
	ImageURL      string    `firestore:"imageUrl"`
	CreatedAt     time.Time `firestore:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt"`
}

// FromCartItemDomain maps a domain cart item to its document form.
func FromCartItemDomain(i *entity.CartItem) *CartItemDoc {
	return &CartItemDoc{
		ItemID:        i.ID,
		BusinessID:    i.BusinessID,
		TransactionID: i.TransactionID,
		Name:          i.Name,
		UnitPrice:     i.UnitPrice,
		Count:         i.Count,
		ImageURL:      i.ImageURL,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// ToCartItemDomain maps the document form back to the domain entity.
func (d *CartItemDoc) ToCartItemDomain() *entity.CartItem {
	return &entity.CartItem{
		ID:            d.ItemID,
		BusinessID:    d.BusinessID,
		TransactionID: d.TransactionID,
		Name:          d.Name,
		UnitPrice:     d.UnitPrice,
		Count:         d.Count,
		ImageURL:      d.ImageURL,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// TransactionDoc is the stored form of entity.Transaction with its embedded
// line snapshot.
type TransactionDoc struct {
	TransactionID string               `firestore:"transactionId"`
	BusinessID    string               `firestore:"businessId"`
	Lines         []TransactionLineDoc `firestore:"lines"`
	TotalPayment  int64                `firestore:"totalPayment"`
	CreatedAt     time.Time            `firestore:"createdAt"`
}

// TransactionLineDoc is one frozen cart item inside a transaction document.
type TransactionLineDoc struct {
	ItemID        string `firestore:"itemId"`
	Name          string `firestore:"name"`
	Count         int64  `firestore:"count"`
	ExtendedPrice int64  `firestore:"extendedPrice"`
}

// FromTransactionDomain maps a domain transaction to its document form.
func FromTransactionDomain(t *entity.Transaction) *TransactionDoc {
	lines := make([]TransactionLineDoc, 0, len(t.Lines))
	for _, line := range t.Lines {
		lines = append(lines, TransactionLineDoc{
			ItemID:        line.ItemID,
			Name:          line.Name,
			Count:         line.Count,
			ExtendedPrice: line.ExtendedPrice,
		})
	}

	return &TransactionDoc{
		TransactionID: t.ID,
		BusinessID:    t.BusinessID,
		Lines:         lines,
		TotalPayment:  t.TotalPayment,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionDomain maps the document form back to the domain entity.
func (d *TransactionDoc) ToTransactionDomain() *entity.Transaction {
	lines := make([]entity.TransactionLine, 0, len(d.Lines))
	for _, line := range d.Lines {
		lines = append(lines, entity.TransactionLine{
			ItemID:        line.ItemID,
			Name:          line.Name,
			Count:         line.Count,
			ExtendedPrice: line.ExtendedPrice,
		})
	}

	return &entity.Transaction{
		ID:           d.TransactionID,
		BusinessID:   d.BusinessID,
		Lines:        lines,
		TotalPayment: d.TotalPayment,
		CreatedAt:    d.CreatedAt,
	}
}

// UserDoc is the stored form of entity.User.
type UserDoc struct {
	UserID    string    `firestore:"userId"`
	Username  string    `firestore:"username"`
	Email     string    `firestore:"email"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// FromUserDomain maps a domain user to its document form.
func FromUserDomain(u *entity.User) *UserDoc {
	return &UserDoc{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserDomain maps the document form back to the domain entity.
func (d *UserDoc) ToUserDomain() *entity.User {
	return &entity.User{
		ID:        d.UserID,
		Username:  d.Username,
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
	}
}
