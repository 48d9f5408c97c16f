package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client used for the sync server's REST API.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions tune [NewHTTPClient]. Zero values keep resty's defaults
// except RetryCount, where zero disables retries.
type HTTPClientOptions struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	RetryWait  time.Duration
	UserAgent  string
}

// NewHTTPClient returns an independent resty client. Requests are retried
// on transport errors and on 502, 503 and 504 answers.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		AddRetryCondition(retryableStatus)

	if opts.RetryWait > 0 {
		client.SetRetryWaitTime(opts.RetryWait).SetRetryMaxWaitTime(4 * opts.RetryWait)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: client}
}

func retryableStatus(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
