package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andreasstove999/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/storefront-service-go/internal/middleware"
	"github.com/andreasstove999/storefront-service-go/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{
		Error:         msg,
		CorrelationID: middleware.GetCorrelationID(r.Context()),
	})
}

// writeCatalogError maps a catalog client failure to a page-level error
// response. NotFound is handled by callers that give 404 a dedicated view;
// everything else is an upstream problem from this service's point of view.
func writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	var upstream *catalog.UpstreamError
	switch {
	case errors.As(err, &upstream):
		writeError(w, r, http.StatusBadGateway, "catalog upstream error")
	default:
		writeError(w, r, http.StatusBadGateway, "catalog request failed")
	}
}
