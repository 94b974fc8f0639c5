package scrape

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

// BrowserOptions configures the fallback scraper.
type BrowserOptions struct {
	UserAgent   string
	Timeout     time.Duration
	InsecureTLS bool
}

// BrowserScraper is the fallback for sites that reject the default Go
// client. It pins a browser-like cipher suite and curve ordering so the TLS
// ClientHello no longer fingerprints as net/http, and sends a fuller header
// set. Tried only after the primary scraper fails.
type BrowserScraper struct {
	client *http.Client
	opts   BrowserOptions
}

// NewBrowserScraper creates the fallback scraper.
func NewBrowserScraper(opts BrowserOptions) *BrowserScraper {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = 16 * time.Second
	}
	tlsCfg := &tls.Config{
		InsecureSkipVerify: opts.InsecureTLS, //nolint:gosec // reach over strictness
		MinVersion:         tls.VersionTLS12,
		// Chrome-like ordering. Go's default ClientHello is widely
		// fingerprinted by anti-bot layers.
		CipherSuites: []uint16{
			tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
			tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
		},
		CurvePreferences: []tls.CurveID{
			tls.X25519,
			tls.CurveP256,
			tls.CurveP384,
		},
	}
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: 10 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig:     tlsCfg,
		ForceAttemptHTTP2:   true,
	}
	return &BrowserScraper{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		opts: opts,
	}
}

func (s *BrowserScraper) Name() string { return "browser" }

// Fetch GETs the URL with browser headers and returns up to maxBodyBytes of
// the body.
func (s *BrowserScraper) Fetch(ctx context.Context, targetURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "browser: create request")
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://www.google.com/")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "browser: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, eris.Wrap(err, "browser: read body")
	}
	return body, nil
}
