package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jmateos/procura-be/internal/services"
)

// SupplierHandler handles HTTP requests for supplier onboarding and lookup.
type SupplierHandler struct {
	service services.SupplierServiceProvider
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(service services.SupplierServiceProvider) *SupplierHandler {
	return &SupplierHandler{service: service}
}

// OnboardPayload defines the structure for supplier onboarding requests.
type OnboardPayload struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	Address            string `json:"address"`
}

// Onboard handles new supplier registration.
func (h *SupplierHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var payload OnboardPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	supplierID, err := h.service.Onboard(r.Context(), payload.Name, payload.RegistrationNumber, payload.Address)
	if err != nil {
		log.Error().Err(err).Str("registrationNumber", payload.RegistrationNumber).Msg("Failed to onboard supplier")
		respondInternal(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Supplier onboarded successfully",
		"supplierId": supplierID,
	})
}

// GetAll handles the request to list every supplier.
func (h *SupplierHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list suppliers")
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, suppliers)
}
