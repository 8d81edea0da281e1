package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/jmateos/procura-be/internal/services"
)

// BidHandler handles HTTP requests for bid submission, evaluation and
// winning-bid lookup.
type BidHandler struct {
	service services.BidServiceProvider
}

// NewBidHandler creates a new BidHandler.
func NewBidHandler(service services.BidServiceProvider) *BidHandler {
	return &BidHandler{service: service}
}

// SubmitBidPayload defines the structure for bid submission requests.
type SubmitBidPayload struct {
	RFPID      int64   `json:"rfpId"`
	SupplierID int64   `json:"supplierId"`
	Amount     float64 `json:"amount"`
	Documents  string  `json:"documents"`
}

// EvaluatePayload defines the structure for bid evaluation requests.
type EvaluatePayload struct {
	RFPID int64 `json:"rfpId"`
}

// Submit handles a new bid against an RFP.
func (h *BidHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload SubmitBidPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	bidID, err := h.service.Submit(r.Context(), payload.RFPID, payload.SupplierID, payload.Amount, payload.Documents)
	if err != nil {
		log.Error().Err(err).Int64("rfpId", payload.RFPID).Msg("Failed to submit bid")
		respondInternal(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Bid submitted successfully",
		"bidId":   bidID,
	})
}

// GetForRFP handles the request to list every bid on one RFP.
func (h *BidHandler) GetForRFP(w http.ResponseWriter, r *http.Request) {
	rfpID, err := strconv.ParseInt(chi.URLParam(r, "rfpId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid rfpId", http.StatusBadRequest)
		return
	}

	bids, err := h.service.ListForRFP(r.Context(), rfpID)
	if err != nil {
		log.Error().Err(err).Int64("rfpId", rfpID).Msg("Failed to list bids")
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bids)
}

// Evaluate marks every bid on an RFP as evaluated and reports the count.
func (h *BidHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var payload EvaluatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	count, err := h.service.Evaluate(r.Context(), payload.RFPID)
	if err != nil {
		log.Error().Err(err).Int64("rfpId", payload.RFPID).Msg("Failed to evaluate bids")
		respondInternal(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":            "Bids evaluated",
		"evaluatedBidsCount": count,
	})
}

// Winning returns the lowest-amount bid for an RFP, regardless of status.
func (h *BidHandler) Winning(w http.ResponseWriter, r *http.Request) {
	rfpID, err := strconv.ParseInt(chi.URLParam(r, "rfpId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid rfpId", http.StatusBadRequest)
		return
	}

	bid, err := h.service.Winning(r.Context(), rfpID)
	if err != nil {
		if errors.Is(err, services.ErrNoBids) {
			respondJSON(w, http.StatusNotFound, map[string]string{
				"message": "No bids found for this RFP",
			})
			return
		}
		log.Error().Err(err).Int64("rfpId", rfpID).Msg("Failed to find winning bid")
		respondInternal(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"winningBid": bid,
	})
}
