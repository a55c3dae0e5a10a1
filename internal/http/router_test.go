package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/storefront-service-go/internal/cart"
	"github.com/andreasstove999/storefront-service-go/internal/catalog"
	httpapi "github.com/andreasstove999/storefront-service-go/internal/http"
	"github.com/andreasstove999/storefront-service-go/internal/locale"
	"github.com/andreasstove999/storefront-service-go/internal/storefront"
)

type fakeCatalog struct {
	listProductsFunc   func(ctx context.Context, limit, skip int) (*catalog.ProductPage, error)
	getProductFunc     func(ctx context.Context, id int) (*catalog.Product, error)
	searchProductsFunc func(ctx context.Context, q string) (*catalog.ProductPage, error)
	listByCategoryFunc func(ctx context.Context, slug string) (*catalog.ProductPage, error)
	listCategoriesFunc func(ctx context.Context) ([]catalog.Category, error)
}

func (f *fakeCatalog) ListProducts(ctx context.Context, limit, skip int) (*catalog.ProductPage, error) {
	if f.listProductsFunc != nil {
		return f.listProductsFunc(ctx, limit, skip)
	}
	return &catalog.ProductPage{Products: []catalog.Product{}}, nil
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id int) (*catalog.Product, error) {
	if f.getProductFunc != nil {
		return f.getProductFunc(ctx, id)
	}
	return nil, catalog.ErrNotFound
}

func (f *fakeCatalog) SearchProducts(ctx context.Context, q string) (*catalog.ProductPage, error) {
	if f.searchProductsFunc != nil {
		return f.searchProductsFunc(ctx, q)
	}
	return &catalog.ProductPage{Products: []catalog.Product{}}, nil
}

func (f *fakeCatalog) ListByCategory(ctx context.Context, slug string) (*catalog.ProductPage, error) {
	if f.listByCategoryFunc != nil {
		return f.listByCategoryFunc(ctx, slug)
	}
	return &catalog.ProductPage{Products: []catalog.Product{}}, nil
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	if f.listCategoriesFunc != nil {
		return f.listCategoriesFunc(ctx)
	}
	return []catalog.Category{}, nil
}

func newTestRouter(t *testing.T, fake *fakeCatalog) http.Handler {
	t.Helper()

	bundle, err := locale.Load()
	require.NoError(t, err)

	return httpapi.NewRouter(httpapi.Deps{
		Logger:           log.New(io.Discard, "", 0),
		Service:          storefront.NewService(fake),
		Store:            cart.NewStore(),
		Catalog:          fake,
		Bundle:           bundle,
		CORSAllowOrigins: []string{"*"},
	})
}

// do replays the session cookie so a sequence of requests shares one cart.
func do(t *testing.T, router http.Handler, method, target string, body []byte, cookies []*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)
	for _, c := range cookies {
		r.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if got := w.Result().Cookies(); len(got) > 0 {
		cookies = got
	}
	return w, cookies
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &fakeCatalog{})

	w, _ := do(t, router, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestListProductsEndpoint(t *testing.T) {
	t.Run("search param drives the search fetch", func(t *testing.T) {
		var searched string
		fake := &fakeCatalog{
			searchProductsFunc: func(ctx context.Context, q string) (*catalog.ProductPage, error) {
				searched = q
				return &catalog.ProductPage{Products: []catalog.Product{
					{ID: 2, Title: "Phone Case", Price: 9},
					{ID: 1, Title: "Phone", Price: 99},
				}}, nil
			},
		}
		router := newTestRouter(t, fake)

		w, cookies := do(t, router, http.MethodGet, "/api/storefront/products?search=phone&sortBy=price&sortOrder=desc", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "phone", searched)
		assert.NotEmpty(t, cookies, "session cookie should be issued")
		assert.NotEmpty(t, w.Header().Get("X-Correlation-Id"))

		var page storefront.CatalogPage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
		require.Len(t, page.Products, 2)
		assert.Equal(t, "Phone", page.Products[0].Title, "price desc puts the expensive one first")
	})

	t.Run("upstream failure is a page-level 502", func(t *testing.T) {
		fake := &fakeCatalog{
			listProductsFunc: func(ctx context.Context, limit, skip int) (*catalog.ProductPage, error) {
				return nil, &catalog.UpstreamError{Op: "listProducts", Status: 503}
			},
		}
		router := newTestRouter(t, fake)

		w, _ := do(t, router, http.MethodGet, "/api/storefront/products", nil, nil)
		require.Equal(t, http.StatusBadGateway, w.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.NotEmpty(t, body["error"])
		assert.NotEmpty(t, body["correlationId"])
	})
}

func TestLastProductsEndpoint(t *testing.T) {
	fake := &fakeCatalog{
		listProductsFunc: func(ctx context.Context, limit, skip int) (*catalog.ProductPage, error) {
			return &catalog.ProductPage{Products: []catalog.Product{{ID: 1, Title: "Phone"}}}, nil
		},
	}
	router := newTestRouter(t, fake)

	t.Run("nothing rendered yet", func(t *testing.T) {
		w, _ := do(t, router, http.MethodGet, "/api/storefront/products/last", nil, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("replays the session's newest listing", func(t *testing.T) {
		w, cookies := do(t, router, http.MethodGet, "/api/storefront/products", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = do(t, router, http.MethodGet, "/api/storefront/products/last", nil, cookies)
		require.Equal(t, http.StatusOK, w.Code)

		var page storefront.CatalogPage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
		require.Len(t, page.Products, 1)
		assert.Equal(t, "Phone", page.Products[0].Title)
	})
}

func TestGetProductEndpoint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fake := &fakeCatalog{
			getProductFunc: func(ctx context.Context, id int) (*catalog.Product, error) {
				return &catalog.Product{ID: id, Title: "Phone"}, nil
			},
		}
		router := newTestRouter(t, fake)

		w, _ := do(t, router, http.MethodGet, "/api/storefront/products/1", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var page storefront.ProductPage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
		assert.True(t, page.Found)
		assert.Equal(t, "Phone", page.Product.Title)
	})

	t.Run("missing product renders the not-found state", func(t *testing.T) {
		router := newTestRouter(t, &fakeCatalog{})

		w, _ := do(t, router, http.MethodGet, "/api/storefront/products/99999", nil, nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		var page storefront.ProductPage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
		assert.False(t, page.Found)
		assert.Nil(t, page.Product)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router := newTestRouter(t, &fakeCatalog{})

		w, _ := do(t, router, http.MethodGet, "/api/storefront/products/abc", nil, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLocaleEndpoint(t *testing.T) {
	router := newTestRouter(t, &fakeCatalog{})

	w, _ := do(t, router, http.MethodGet, "/api/storefront/locale", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bundle map[string]map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&bundle))
	assert.Contains(t, bundle, "products")
	assert.Contains(t, bundle, "cart")
}

func TestCartFlow(t *testing.T) {
	phone := catalog.Product{ID: 1, Title: "Phone", Price: 100, DiscountPercentage: 10, Stock: 5}
	fake := &fakeCatalog{
		getProductFunc: func(ctx context.Context, id int) (*catalog.Product, error) {
			if id == phone.ID {
				p := phone
				return &p, nil
			}
			return nil, catalog.ErrNotFound
		},
	}
	router := newTestRouter(t, fake)

	var cookies []*http.Cookie
	var w *httptest.ResponseRecorder

	// add twice: one line, quantity accumulates
	w, cookies = do(t, router, http.MethodPost, "/api/cart/items", []byte(`{"productId":1,"quantity":2}`), cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w, cookies = do(t, router, http.MethodPost, "/api/cart/items", []byte(`{"productId":1,"quantity":2}`), cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Items        []cart.Line `json:"items"`
		Subtotal     float64     `json:"subtotal"`
		SubtotalText string      `json:"subtotalText"`
		TotalItems   int         `json:"totalItems"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 4, view.Items[0].Quantity)
	assert.InDelta(t, 360.0, view.Subtotal, 1e-9)
	assert.Equal(t, "$360.00", view.SubtotalText)
	assert.Equal(t, 4, view.TotalItems)

	// set quantity above stock clamps
	w, cookies = do(t, router, http.MethodPut, "/api/cart/items/1", []byte(`{"quantity":42}`), cookies)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, 5, view.Items[0].Quantity)

	// checkout flags the cart without touching lines
	w, cookies = do(t, router, http.MethodPost, "/api/cart/checkout", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// remove empties the cart
	w, cookies = do(t, router, http.MethodDelete, "/api/cart/items/1", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Empty(t, view.Items)
	assert.Zero(t, view.TotalItems)

	// a fresh session does not see this cart
	w, _ = do(t, router, http.MethodGet, "/api/cart", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Empty(t, view.Items)
}

func TestAddUnknownProduct(t *testing.T) {
	router := newTestRouter(t, &fakeCatalog{})

	w, _ := do(t, router, http.MethodPost, "/api/cart/items", []byte(`{"productId":42,"quantity":1}`), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddInvalidJSON(t *testing.T) {
	router := newTestRouter(t, &fakeCatalog{})

	w, _ := do(t, router, http.MethodPost, "/api/cart/items", []byte(`{`), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
