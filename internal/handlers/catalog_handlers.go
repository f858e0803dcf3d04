package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sweetrecords/storefront/internal/domain"
)

// maxImageUpload bounds the multipart memory buffer for product images.
const maxImageUpload = 10 << 20 // 10 MiB

// CreateProduct handles admin product creation with a multipart image.
func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form", CodeInvalidInput)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Image upload failed", CodeInvalidInput)
		return
	}
	defer file.Close()

	req := domain.CreateProductRequest{
		Name:        r.FormValue("name"),
		Price:       r.FormValue("price"),
		Description: r.FormValue("description"),
	}

	product, err := h.catalogService.CreateProduct(r.Context(), &req, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Product added successfully",
		"product": product,
	})
}

// ListProducts returns the full catalog.
func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

// DeleteProduct removes a catalog entry (admin only).
func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID", CodeInvalidInput)
		return
	}

	if err := h.catalogService.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Product deleted successfully",
	})
}
