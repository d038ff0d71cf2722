package avatar

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/doyensec/safeurl"
)

// Fetcher downloads a provider-supplied profile picture and re-encodes it
// as base64 text for inline storage on the user record. The picture URL is
// bearer-supplied, so the HTTP client refuses private, loopback, and
// link-local destinations (SSRF guard).
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewFetcher returns a Fetcher with an SSRF-guarded client. maxBytes caps
// the downloaded image size.
func NewFetcher(timeout time.Duration, maxBytes int64) *Fetcher {
	cfg := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()
	return &Fetcher{client: safeurl.Client(cfg).Client, maxBytes: maxBytes}
}

// newFetcherWith is used by tests to substitute an unguarded client.
func newFetcherWith(client *http.Client, maxBytes int64) *Fetcher {
	return &Fetcher{client: client, maxBytes: maxBytes}
}

// FetchBase64 downloads the image at url and returns it base64-encoded.
func (f *Fetcher) FetchBase64(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("avatar request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("avatar fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("avatar fetch: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("avatar read: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return "", fmt.Errorf("avatar read: image exceeds %d bytes", f.maxBytes)
	}
	return base64.StdEncoding.EncodeToString(body), nil
}
