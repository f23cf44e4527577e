package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. The embedding exposes the full resty
// API while giving the backend adapter and the agent gateway a single
// place to hang shared behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a fresh HTTPClient with a default resty client
// underneath. Every call yields an independent client with its own
// connection pool; callers configure base URL and timeout themselves.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
