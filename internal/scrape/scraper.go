// Package scrape fetches homepage HTML and extracts brand indicators. A
// primary net/http fetcher is tried first; a browser-profile fetcher with a
// different TLS fingerprint picks up sites that block the default client.
package scrape

import "context"

// Scraper fetches a single URL and returns the raw HTML body.
type Scraper interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
	Name() string
}
