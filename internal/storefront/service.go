// Package storefront composes the query model and the catalog client into the
// pages the storefront renders.
package storefront

import (
	"context"
	"errors"
	"sync"

	"github.com/andreasstove999/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/storefront-service-go/internal/query"
)

// listingLimit is the page size for the unfiltered catalog listing.
const listingLimit = 100

// Catalog is the slice of the catalog client the service needs. The concrete
// *catalog.Client satisfies it; tests substitute a fake.
type Catalog interface {
	ListProducts(ctx context.Context, limit, skip int) (*catalog.ProductPage, error)
	GetProduct(ctx context.Context, id int) (*catalog.Product, error)
	SearchProducts(ctx context.Context, q string) (*catalog.ProductPage, error)
	ListByCategory(ctx context.Context, slug string) (*catalog.ProductPage, error)
	ListCategories(ctx context.Context) ([]catalog.Category, error)
}

// CatalogPage is one fully derived catalog listing: the sorted products, the
// category list for the filter controls, and the filters that produced it.
type CatalogPage struct {
	Products   []catalog.Product  `json:"products"`
	Categories []catalog.Category `json:"categories"`
	Filters    query.State        `json:"filters"`
}

// ProductPage is the product-detail view. Found=false is the dedicated
// not-found state, distinct from an error.
type ProductPage struct {
	Product *catalog.Product `json:"product,omitempty"`
	Found   bool             `json:"found"`
}

type Service struct {
	catalog Catalog
	guard   *viewGuard
}

func NewService(c Catalog) *Service {
	return &Service{
		catalog: c,
		guard:   newViewGuard(),
	}
}

// CatalogView renders the listing for one query state. The category list and
// the product listing are independent fetches and run concurrently. The result
// is recorded as the session's current view only while no newer request for
// the same session has started, so rapid successive filter changes end with
// the newest fetch winning.
func (s *Service) CatalogView(ctx context.Context, session string, state query.State) (CatalogPage, error) {
	token := s.guard.begin(session)

	var (
		wg      sync.WaitGroup
		cats    []catalog.Category
		catsErr error
		page    *catalog.ProductPage
		pageErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cats, catsErr = s.catalog.ListCategories(ctx)
	}()
	go func() {
		defer wg.Done()
		page, pageErr = s.fetchListing(ctx, state)
	}()
	wg.Wait()

	if pageErr != nil {
		return CatalogPage{}, pageErr
	}
	if catsErr != nil {
		return CatalogPage{}, catsErr
	}

	view := CatalogPage{
		Products:   query.SortProducts(page.Products, state.SortBy, state.SortOrder),
		Categories: cats,
		Filters:    state,
	}

	s.guard.storeIfLatest(session, token, view)

	return view, nil
}

// fetchListing issues exactly one listing call per fetch mode. Search wins
// over category.
func (s *Service) fetchListing(ctx context.Context, state query.State) (*catalog.ProductPage, error) {
	mode := state.FetchMode()
	switch mode.Kind {
	case query.FetchSearch:
		return s.catalog.SearchProducts(ctx, mode.Search)
	case query.FetchByCategory:
		return s.catalog.ListByCategory(ctx, mode.Category)
	default:
		return s.catalog.ListProducts(ctx, listingLimit, 0)
	}
}

// LastView returns the newest completed view for the session, if any.
func (s *Service) LastView(session string) (CatalogPage, bool) {
	return s.guard.lastView(session)
}

// Categories returns the category list in upstream order.
func (s *Service) Categories(ctx context.Context) ([]catalog.Category, error) {
	return s.catalog.ListCategories(ctx)
}

// ProductView fetches a single product. An upstream 404 becomes the not-found
// page state; every other failure propagates to the page error boundary.
func (s *Service) ProductView(ctx context.Context, id int) (ProductPage, error) {
	p, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return ProductPage{Found: false}, nil
		}
		return ProductPage{}, err
	}
	return ProductPage{Product: p, Found: true}, nil
}
