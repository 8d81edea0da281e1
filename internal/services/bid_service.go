package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/jmateos/procura-be/internal/models"
)

// ErrNoBids is returned when a winning-bid lookup finds no bids for the RFP.
var ErrNoBids = errors.New("no bids found for rfp")

// BidServiceProvider defines the interface for bid services.
type BidServiceProvider interface {
	Submit(ctx context.Context, rfpID, supplierID int64, amount float64, documents string) (int64, error)
	ListForRFP(ctx context.Context, rfpID int64) ([]models.Bid, error)
	Evaluate(ctx context.Context, rfpID int64) (int, error)
	Winning(ctx context.Context, rfpID int64) (models.Bid, error)
}

// BidService provides bid submission, evaluation and winner lookup.
type BidService struct {
	db *sqlx.DB
}

// NewBidService creates a new BidService.
func NewBidService(db *sqlx.DB) *BidService {
	return &BidService{db: db}
}

// Submit inserts a new bid with the default pending status and returns the
// generated id. The referenced RFP and supplier are only checked by the
// store's own foreign-key enforcement.
func (s *BidService) Submit(ctx context.Context, rfpID, supplierID int64, amount float64, documents string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO bids (rfp_id, supplier_id, amount, documents) VALUES (?, ?, ?, ?)",
		rfpID, supplierID, amount, documents)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListForRFP returns every bid submitted against one RFP.
func (s *BidService) ListForRFP(ctx context.Context, rfpID int64) ([]models.Bid, error) {
	bids := []models.Bid{}
	err := s.db.SelectContext(ctx, &bids,
		"SELECT id, rfp_id, supplier_id, amount, documents, status, created_at FROM bids WHERE rfp_id = ?",
		rfpID)
	return bids, err
}

// Evaluate marks every bid on an RFP as evaluated and reports how many bids
// existed at fetch time. The fetch and the update are two independent
// statements with no transaction spanning them; re-running on an already
// evaluated RFP succeeds and reports the same count.
func (s *BidService) Evaluate(ctx context.Context, rfpID int64) (int, error) {
	bids, err := s.ListForRFP(ctx, rfpID)
	if err != nil {
		return 0, err
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE bids SET status = ? WHERE rfp_id = ?",
		models.BidStatusEvaluated, rfpID)
	if err != nil {
		return 0, err
	}
	return len(bids), nil
}

// Winning returns the bid with the lowest amount for an RFP, regardless of
// its status. Ties fall to whichever row the store returns first.
func (s *BidService) Winning(ctx context.Context, rfpID int64) (models.Bid, error) {
	var bid models.Bid
	err := s.db.GetContext(ctx, &bid,
		"SELECT id, rfp_id, supplier_id, amount, documents, status, created_at FROM bids WHERE rfp_id = ? ORDER BY amount ASC LIMIT 1",
		rfpID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bid{}, ErrNoBids
		}
		return models.Bid{}, err
	}
	return bid, nil
}
