package services

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jmateos/procura-be/internal/models"
)

// SupplierServiceProvider defines the interface for supplier services.
type SupplierServiceProvider interface {
	Onboard(ctx context.Context, name, registrationNumber, address string) (int64, error)
	List(ctx context.Context) ([]models.Supplier, error)
}

// SupplierService provides supplier onboarding and lookup.
type SupplierService struct {
	db *sqlx.DB
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(db *sqlx.DB) *SupplierService {
	return &SupplierService{db: db}
}

// Onboard inserts a new supplier and returns the generated id. A duplicate
// registration number surfaces as the store's constraint error.
func (s *SupplierService) Onboard(ctx context.Context, name, registrationNumber, address string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO suppliers (name, registration_number, address) VALUES (?, ?, ?)",
		name, registrationNumber, address)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns every supplier in the store's natural order.
func (s *SupplierService) List(ctx context.Context) ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	err := s.db.SelectContext(ctx, &suppliers,
		"SELECT id, name, registration_number, address FROM suppliers")
	return suppliers, err
}
