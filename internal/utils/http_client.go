// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client and keeps a cookie jar so the session
// cookie set by the server is replayed on later requests.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client with its own cookie jar, base URL and
// timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	jar, _ := cookiejar.New(nil) // nil options never fail

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetCookieJar(jar).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// Jar returns the client's cookie jar.
func (c *HTTPClient) Jar() http.CookieJar {
	return c.GetClient().Jar
}
