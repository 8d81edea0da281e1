package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jmateos/procura-be/internal/services"
)

// RFPHandler handles HTTP requests for RFP creation and listing.
type RFPHandler struct {
	service services.RFPServiceProvider
}

// NewRFPHandler creates a new RFPHandler.
func NewRFPHandler(service services.RFPServiceProvider) *RFPHandler {
	return &RFPHandler{service: service}
}

// CreateRFPPayload defines the structure for RFP creation requests.
type CreateRFPPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create handles the request to create a new RFP.
func (h *RFPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateRFPPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rfpID, err := h.service.Create(r.Context(), payload.Title, payload.Description)
	if err != nil {
		log.Error().Err(err).Str("title", payload.Title).Msg("Failed to create RFP")
		respondInternal(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "RFP created successfully",
		"rfpId":   rfpID,
	})
}

// GetAll handles the request to list every RFP.
func (h *RFPHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	rfps, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list RFPs")
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rfps)
}
