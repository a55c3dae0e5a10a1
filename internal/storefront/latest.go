package storefront

import "sync"

// viewGuard hands out monotonically increasing request tokens per session and
// owns the stored views, so checking a token and writing the view happen under
// one lock. A stale completion must not overwrite a view stored by a later
// request.
type viewGuard struct {
	mu     sync.Mutex
	issued map[string]uint64
	last   map[string]CatalogPage
}

func newViewGuard() *viewGuard {
	return &viewGuard{
		issued: make(map[string]uint64),
		last:   make(map[string]CatalogPage),
	}
}

// begin issues the next token for the session.
func (g *viewGuard) begin(session string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued[session]++
	return g.issued[session]
}

// storeIfLatest records the view as the session's current one, but only while
// token is still the newest issued for the session. Reports whether the view
// was stored.
func (g *viewGuard) storeIfLatest(session string, token uint64, view CatalogPage) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.issued[session] != token {
		return false
	}
	g.last[session] = view
	return true
}

// lastView returns the newest stored view for the session, if any.
func (g *viewGuard) lastView(session string) (CatalogPage, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	view, ok := g.last[session]
	return view, ok
}
