package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port            string
	UpstreamTimeout time.Duration

	// Products API base URL (dummyjson-compatible)
	CatalogURL string

	// CORS
	CORSAllowOrigins []string
}

func Load() Config {
	port := getenv("PORT", "8084")

	timeout := parseDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second)

	cfg := Config{
		Port:            port,
		UpstreamTimeout: timeout,

		CatalogURL: getenv("CATALOG_API_URL", "https://dummyjson.com"),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
