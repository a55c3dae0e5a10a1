package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/storefront-service-go/internal/locale"
	"github.com/andreasstove999/storefront-service-go/internal/middleware"
	"github.com/andreasstove999/storefront-service-go/internal/query"
	"github.com/andreasstove999/storefront-service-go/internal/storefront"
)

type StorefrontHandler struct {
	svc    *storefront.Service
	bundle locale.Bundle
}

func NewStorefrontHandler(svc *storefront.Service, bundle locale.Bundle) *StorefrontHandler {
	return &StorefrontHandler{svc: svc, bundle: bundle}
}

// ListProducts renders the catalog listing for the request's query params.
func (h *StorefrontHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	state := query.ParseParams(r.URL.Query())
	session := middleware.GetCartSession(r.Context())

	page, err := h.svc.CatalogView(r.Context(), session, state)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "max-age=60")
	writeJSON(w, http.StatusOK, page)
}

// LastProducts returns the session's newest completed listing without hitting
// the upstream again, or 404 while the session has not rendered one yet.
func (h *StorefrontHandler) LastProducts(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetCartSession(r.Context())

	page, ok := h.svc.LastView(session)
	if !ok {
		writeError(w, r, http.StatusNotFound, "no listing rendered yet")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetProduct renders the product-detail view. A missing product is a 404 with
// the dedicated not-found body, not an error response.
func (h *StorefrontHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid product id")
		return
	}

	page, err := h.svc.ProductView(r.Context(), id)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}

	if !page.Found {
		writeJSON(w, http.StatusNotFound, page)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *StorefrontHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "max-age=86400")
	writeJSON(w, http.StatusOK, cats)
}

// Locale serves the display-string bundle for the UI.
func (h *StorefrontHandler) Locale(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.bundle)
}
