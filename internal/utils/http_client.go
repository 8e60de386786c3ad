package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-account-service-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own connection pool.
// Transient network errors and 5xx responses to idempotent requests are
// retried twice with a short backoff.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(2).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if resp == nil || resp.Request == nil {
				return err != nil
			}
			if !isIdempotent(resp.Request.Method) {
				return false
			}
			return err != nil || resp.StatusCode() >= 500
		})

	return &HTTPClient{Client: client}
}

func isIdempotent(method string) bool {
	switch method {
	case "GET", "HEAD", "PUT", "DELETE", "OPTIONS":
		return true
	default:
		return false
	}
}
