package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sweetrecords/storefront/internal/domain"
)

// PlaceOrder forwards an order notification to the shop inbox.
func (h *Handlers) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", CodeInvalidInput)
		return
	}

	if err := h.orderService.PlaceOrder(r.Context(), &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Order placed successfully",
	})
}

// Contact relays a customer message to the shop inbox.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", CodeInvalidInput)
		return
	}

	if err := h.orderService.Contact(r.Context(), &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Message sent successfully",
	})
}
