// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"kasir/internal/domain/entity"
)

// BusinessUsecase defines the interface for business-profile operations.
// Reads and updates are restricted to the owning user.
type BusinessUsecase interface {
	CreateBusiness(ctx context.Context, ownerID string, input *CreateBusinessInput) (*entity.Business, error)
	GetBusiness(ctx context.Context, requesterID, businessID string) (*entity.Business, error)
	UpdateBusiness(ctx context.Context, requesterID, businessID string, input *UpdateBusinessInput) error
}

// --- Input DTOs ---

// CreateBusinessInput defines the data required to create a business profile.
type CreateBusinessInput struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Province   string `json:"province"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code"`
}

// UpdateBusinessInput defines a partial business update; nil fields are left
// unchanged.
type UpdateBusinessInput struct {
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	Province   *string `json:"province,omitempty"`
	City       *string `json:"city,omitempty"`
	District   *string `json:"district,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
}
