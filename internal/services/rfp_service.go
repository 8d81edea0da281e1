package services

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jmateos/procura-be/internal/models"
)

// RFPServiceProvider defines the interface for RFP services.
type RFPServiceProvider interface {
	Create(ctx context.Context, title, description string) (int64, error)
	List(ctx context.Context) ([]models.RFP, error)
}

// RFPService provides RFP creation and listing.
type RFPService struct {
	db *sqlx.DB
}

// NewRFPService creates a new RFPService.
func NewRFPService(db *sqlx.DB) *RFPService {
	return &RFPService{db: db}
}

// Create inserts a new RFP and returns the generated id. The creation
// timestamp is defaulted by the store.
func (s *RFPService) Create(ctx context.Context, title, description string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO rfps (title, description) VALUES (?, ?)",
		title, description)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns every RFP. No filter or pagination; ordering is whatever
// the store's natural scan yields.
func (s *RFPService) List(ctx context.Context) ([]models.RFP, error) {
	rfps := []models.RFP{}
	err := s.db.SelectContext(ctx, &rfps,
		"SELECT id, title, description, created_at FROM rfps")
	return rfps, err
}
