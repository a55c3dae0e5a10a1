package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Staleness hints per operation, sent as a request Cache-Control max-age so an
// intermediary cache may serve a recent copy. Correctness never depends on
// whether the hint is honored.
const (
	revalidateListing    = time.Hour
	revalidateSearch     = time.Minute
	revalidateCategories = 24 * time.Hour
)

// Client is a typed, read-only accessor for the upstream products API.
// It is stateless and safe for concurrent use; construct once and share.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base url %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: u, http: httpClient}, nil
}

// ListProducts fetches a page of the full catalog. Limit and skip are passed
// through as-is; the upstream enforces its own cap.
func (c *Client) ListProducts(ctx context.Context, limit, skip int) (*ProductPage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))

	var page ProductPage
	if err := c.get(ctx, "listProducts", "/products", q, revalidateListing, false, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct fetches a single product. A 404 from the upstream maps to
// ErrNotFound rather than an UpstreamError.
func (c *Client) GetProduct(ctx context.Context, id int) (*Product, error) {
	var p Product
	err := c.get(ctx, "getProduct", "/products/"+strconv.Itoa(id), nil, revalidateListing, true, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SearchProducts runs a free-text search. Avoiding an empty query is the
// caller's responsibility; the upstream defines what "" returns.
func (c *Client) SearchProducts(ctx context.Context, query string) (*ProductPage, error) {
	q := url.Values{}
	q.Set("q", query)

	var page ProductPage
	if err := c.get(ctx, "searchProducts", "/products/search", q, revalidateSearch, false, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListByCategory fetches the products of one category slug. The slug is
// percent-encoded when the URL is rendered.
func (c *Client) ListByCategory(ctx context.Context, slug string) (*ProductPage, error) {
	var page ProductPage
	if err := c.get(ctx, "listByCategory", "/products/category/"+slug, nil, revalidateListing, false, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListCategories returns the category list in upstream order.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.get(ctx, "listCategories", "/products/categories", nil, revalidateCategories, false, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// mapNotFound gives 404 its special meaning; only the single-product fetch
// treats absence as a distinct outcome.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, revalidate time.Duration, mapNotFound bool, out any) error {
	rel := &url.URL{Path: path}
	if query != nil {
		rel.RawQuery = query.Encode()
	}
	u := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "max-age="+strconv.Itoa(int(revalidate.Seconds())))

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if mapNotFound && resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Op: op, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}
