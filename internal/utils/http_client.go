package utils

import (
	"time"

	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client that
//   - stamps every request with a fresh [RequestIDHeader] unless the caller
//     already set one;
//   - logs method, URL, status and latency of every exchange at debug level.
//
// Bodies are never logged: they carry credentials.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New()

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(RequestIDHeader) == "" {
			req.SetHeader(RequestIDHeader, NewRequestID())
		}
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("request_id", resp.Request.Header.Get(RequestIDHeader)).
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("latency", resp.Time()).
			Msg("http exchange")
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		log.Warn().
			Err(err).
			Str("request_id", req.Header.Get(RequestIDHeader)).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request failed")
	})

	return &HTTPClient{Client: client}
}

// WithTimeout sets the per-request timeout and returns the receiver.
func (c *HTTPClient) WithTimeout(timeout time.Duration) *HTTPClient {
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}
