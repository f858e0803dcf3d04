package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sweetrecords/storefront/internal/domain"
)

// AddCartItem adds a product to the authenticated user's cart.
func (h *Handlers) AddCartItem(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	var req domain.CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", CodeInvalidInput)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), CodeInvalidInput)
		return
	}

	entry, err := h.cartService.Add(r.Context(), user.ID, req.ProductID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Product added to cart successfully",
		"entry":   entry,
	})
}

// ListCart returns the authenticated user's cart; an empty cart is a 200
// with an empty list.
func (h *Handlers) ListCart(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	entries, err := h.cartService.List(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cart": entries,
	})
}

// RemoveCartItem deletes one entry from the authenticated user's cart.
func (h *Handlers) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	var req domain.CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", CodeInvalidInput)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), CodeInvalidInput)
		return
	}

	if err := h.cartService.Remove(r.Context(), user.ID, req.ProductID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Product deleted from cart successfully",
	})
}
