package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPScraperFetch(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html><title>Acme</title></html>"))
	}))
	defer srv.Close()

	s := NewHTTPScraper(HTTPOptions{})
	body, err := s.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Acme")
	assert.Contains(t, gotUA, "Mozilla/5.0")
}

func TestHTTPScraperFetchStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	s := NewHTTPScraper(HTTPOptions{})
	_, err := s.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusForbidden, se.Code)
}

func TestHTTPScraperFetchNetworkError(t *testing.T) {
	t.Parallel()

	s := NewHTTPScraper(HTTPOptions{Timeout: 2 * time.Second})
	_, err := s.Fetch(context.Background(), "http://127.0.0.1:1")
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestHTTPScraperInsecureTLS(t *testing.T) {
	t.Parallel()

	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><title>Self Signed</title></html>"))
	}))
	defer srv.Close()

	// Verification on: the self-signed cert is rejected.
	strict := NewHTTPScraper(HTTPOptions{})
	_, err := strict.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	// Verification off: the page is reachable.
	lax := NewHTTPScraper(HTTPOptions{InsecureTLS: true})
	body, err := lax.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Self Signed")
}

func TestHTTPScraperBodyCap(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", maxBodyBytes+1024)))
	}))
	defer srv.Close()

	s := NewHTTPScraper(HTTPOptions{})
	body, err := s.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, body, maxBodyBytes)
}

func TestBrowserScraperFetch(t *testing.T) {
	t.Parallel()

	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		_, _ = w.Write([]byte("<html><title>Fallback</title></html>"))
	}))
	defer srv.Close()

	s := NewBrowserScraper(BrowserOptions{})
	body, err := s.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Fallback")
	assert.Contains(t, gotHeaders.Get("Accept"), "text/html")
	assert.Equal(t, "https://www.google.com/", gotHeaders.Get("Referer"))
}

func TestScraperNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http", NewHTTPScraper(HTTPOptions{}).Name())
	assert.Equal(t, "browser", NewBrowserScraper(BrowserOptions{}).Name())
}
