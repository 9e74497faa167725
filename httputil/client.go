package httputil

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultUserAgent = "birates/0.1.0"
	mediaTypeJSON    = "application/json"
)

var ErrStatusCode = errors.New("http status is not successful")

// Doer sends an HTTP request and returns the response. *http.Client implements it,
// tests and callers with custom round-tripping can inject their own
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError reports a response with a non-2xx status code. Body holds the raw response text
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("the server responded with an error. status code: %d; message: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatusCode
}

// DefaultHTTPClient return preconfigured HTTP client
func DefaultHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			DisableCompression:    true,
			IdleConnTimeout:       5 * time.Minute,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewHTTPClient return prepared SourceHTTPClient. A nil doer selects DefaultHTTPClient
func NewHTTPClient(doer Doer) SourceHTTPClient {
	if doer == nil {
		doer = DefaultHTTPClient()
	}

	return SourceHTTPClient{client: doer, userAgent: defaultUserAgent}
}

// WithUserAgent returns a copy of the client sending the given User-Agent header
func (f SourceHTTPClient) WithUserAgent(ua string) SourceHTTPClient {
	if ua != "" {
		f.userAgent = ua
	}

	return f
}

type SourceHTTPClient struct {
	client    Doer
	userAgent string
}

func (f SourceHTTPClient) UserAgent() string {
	return f.userAgent
}

// Get implements HTTP method GET client and returns the slice byte from the body.
// A response with a status outside 2xx is returned as *StatusError
func (f SourceHTTPClient) Get(ctx context.Context, u url.URL) ([]byte, error) {
	return f.fetch(ctx, u)
}

func (f SourceHTTPClient) fetch(ctx context.Context, u url.URL) ([]byte, error) {
	req, err := f.prepareRequest(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("build HTTP request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("make HTTP request: %w", err)
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("read body: %w", err)
		}
	}

	gzipped := strings.Contains(resp.Header.Get("Content-Type"), "application/x-gzip") ||
		strings.Contains(resp.Header.Get("Content-Encoding"), "gzip")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body := raw
		if gzipped {
			// error pages are often mislabeled by proxies, keep the raw bytes then
			if b, err := gunzip(raw); err == nil {
				body = b
			}
		}

		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if !gzipped {
		return raw, nil
	}

	b, err := gunzip(raw)
	if err != nil {
		return nil, err
	}

	return b, nil
}

func gunzip(raw []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unable create gzip.NewReader: %w", err)
	}
	defer gz.Close()

	b, err := io.ReadAll(gz)
	if err != nil {
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("read gzip body: %w", err)
		}
	}

	return b, nil
}

func (f SourceHTTPClient) prepareRequest(ctx context.Context, u url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", mediaTypeJSON)
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Encoding", "gzip")

	return req, nil
}
