// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Settings(t *testing.T) {
	client := NewHTTPClient("http://localhost:4000", 3*time.Second)

	if client.BaseURL != "http://localhost:4000" {
		t.Errorf("expected base URL, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", client.GetClient().Timeout)
	}
	if client.Jar() == nil {
		t.Error("expected cookie jar to be set")
	}
}

// TestHTTPClient_ReplaysCookies checks that a cookie set by one response is
// sent on the next request.
func TestHTTPClient_ReplaysCookies(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc", Path: "/"})
		case "/me":
			if c, err := r.Cookie("token"); err == nil {
				gotCookie = c.Value
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)

	if _, err := client.R().Post("/login"); err != nil {
		t.Fatal(err)
	}
	if _, err := client.R().Get("/me"); err != nil {
		t.Fatal(err)
	}

	if gotCookie != "abc" {
		t.Errorf("expected cookie 'abc' to be replayed, got %q", gotCookie)
	}
}
