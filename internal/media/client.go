// internal/media/client.go
//
// HTTP client for the external reward-media service.
//
// Endpoints:
//   GET /sources                 → {"sources": ["name", ...]}
//   GET /images/collect          → images from every source
//   GET /images/collect/{name}   → images from one source
//   GET /videos/collect          → videos from every source
//   GET /videos/collect/{name}   → videos from one source
//
// The client only fetches and decodes; fallback policy lives in Collector.

package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrDisabled = errors.New("media service not configured")

// maxBody caps how much of a response is read.
const maxBody = 8 << 20

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for baseURL. An empty baseURL disables every call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	dialer := &net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Transport: tr, Timeout: timeout},
	}
}

// Sources lists the configured media sources.
func (c *Client) Sources(ctx context.Context) ([]string, error) {
	data, err := c.get(ctx, "sources")
	if err != nil {
		return nil, err
	}
	return decodeSources(data), nil
}

// AllImages fetches images across every source.
func (c *Client) AllImages(ctx context.Context) ([]Item, error) {
	return c.items(ctx, KindImage, "images", "collect")
}

// AllVideos fetches videos across every source.
func (c *Client) AllVideos(ctx context.Context) ([]Item, error) {
	return c.items(ctx, KindVideo, "videos", "collect")
}

// Images fetches images from one named source.
func (c *Client) Images(ctx context.Context, source string) ([]Item, error) {
	return c.items(ctx, KindImage, "images", "collect", source)
}

// Videos fetches videos from one named source.
func (c *Client) Videos(ctx context.Context, source string) ([]Item, error) {
	return c.items(ctx, KindVideo, "videos", "collect", source)
}

func (c *Client) items(ctx context.Context, kind Kind, path ...string) ([]Item, error) {
	data, err := c.get(ctx, path...)
	if err != nil {
		return nil, err
	}
	return decodeItems(data, kind), nil
}

func (c *Client) get(ctx context.Context, path ...string) ([]byte, error) {
	if c == nil || c.baseURL == "" {
		return nil, ErrDisabled
	}
	endpoint, err := url.JoinPath(c.baseURL, path...)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		snippet := strings.TrimSpace(string(body))
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, fmt.Errorf("media: GET %s status %d: %s", endpoint, resp.StatusCode, snippet)
	}
	return body, nil
}
