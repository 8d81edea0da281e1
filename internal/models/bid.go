package models

import "time"

// Bid statuses. Every bid starts out pending; evaluation flips the whole
// set for an RFP to evaluated.
const (
	BidStatusPending   = "pending"
	BidStatusEvaluated = "evaluated"
)

// Bid is a supplier's monetary offer against a specific RFP.
type Bid struct {
	ID         int64     `db:"id" json:"id"`
	RFPID      int64     `db:"rfp_id" json:"rfpId"`
	SupplierID int64     `db:"supplier_id" json:"supplierId"`
	Amount     float64   `db:"amount" json:"amount"`
	Documents  string    `db:"documents" json:"documents"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
