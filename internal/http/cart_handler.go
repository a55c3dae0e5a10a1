package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/storefront-service-go/internal/cart"
	"github.com/andreasstove999/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/storefront-service-go/internal/middleware"
)

// ProductFetcher resolves a product for add-to-cart. The cart stores the
// returned snapshot; it is never re-fetched for lines already in the cart.
type ProductFetcher interface {
	GetProduct(ctx context.Context, id int) (*catalog.Product, error)
}

type CartHandler struct {
	store   *cart.Store
	catalog ProductFetcher
}

func NewCartHandler(store *cart.Store, catalog ProductFetcher) *CartHandler {
	return &CartHandler{store: store, catalog: catalog}
}

// CartView is the cart plus its derived totals, ready for rendering.
type CartView struct {
	cart.Cart
	Subtotal     float64 `json:"subtotal"`
	SubtotalText string  `json:"subtotalText"`
	TotalItems   int     `json:"totalItems"`
}

func newCartView(c cart.Cart) CartView {
	sub := c.Subtotal()
	return CartView{
		Cart:         c,
		Subtotal:     sub,
		SubtotalText: fmt.Sprintf("$%.2f", sub),
		TotalItems:   c.TotalItems(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetCartSession(r.Context())
	writeJSON(w, http.StatusOK, newCartView(h.store.Get(session)))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetCartSession(r.Context())

	var body struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	p, err := h.catalog.GetProduct(r.Context(), body.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "product not found")
			return
		}
		writeCatalogError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newCartView(h.store.Add(session, *p, body.Quantity)))
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetCartSession(r.Context())

	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid product id")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	writeJSON(w, http.StatusOK, newCartView(h.store.SetQuantity(session, productID, body.Quantity)))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetCartSession(r.Context())

	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid product id")
		return
	}

	writeJSON(w, http.StatusOK, newCartView(h.store.Remove(session, productID)))
}

func (h *CartHandler) SetOpen(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetCartSession(r.Context())

	var body struct {
		Open bool `json:"open"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	writeJSON(w, http.StatusOK, newCartView(h.store.SetOpen(session, body.Open)))
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetCartSession(r.Context())
	writeJSON(w, http.StatusOK, newCartView(h.store.RequestCheckout(session)))
}
