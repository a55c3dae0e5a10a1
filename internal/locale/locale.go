// Package locale serves the display-string bundle consumed by the storefront
// UI. The bundle is opaque to the rest of the service: sections of key/value
// strings, nothing more.
package locale

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed locales/en.json
var enBundle []byte

type Bundle map[string]map[string]string

// Load parses the embedded default bundle.
func Load() (Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(enBundle, &b); err != nil {
		return nil, fmt.Errorf("parse locale bundle: %w", err)
	}
	return b, nil
}

// Section returns a copy of one section. A missing section yields an empty
// map so lookups degrade to the key itself rather than panicking.
func (b Bundle) Section(name string) map[string]string {
	src, ok := b[name]
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
