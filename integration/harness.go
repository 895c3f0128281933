// Package integration drives a running API instance over HTTP. Tests here
// soft-skip when no server is reachable, so the suite stays green in
// environments without a deployed backend.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/opsboardhq/opsboard-backend/pkg/config"
	"github.com/opsboardhq/opsboard-backend/pkg/env"
)

// Harness wraps an HTTP client pointed at a deployed API instance. After a
// successful Login, every request it issues carries the bearer token.
type Harness struct {
	BaseURL string
	Client  *http.Client

	accessToken string
}

// NewHarness reads the target base URL from the environment. An empty base URL
// is valid; requests will then skip the calling test.
func NewHarness() *Harness {
	return &Harness{
		BaseURL: strings.TrimRight(env.Get(config.EnvAPIBaseURL, ""), "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Login authenticates against POST /api/auth/login and stores the returned
// access token. Any transport failure or non-200 response skips the test
// instead of failing it.
func (h *Harness) Login(t *testing.T, email, password string) {
	t.Helper()

	body := map[string]string{"email": email, "password": password}
	resp, raw := h.post(t, "/api/auth/login", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Skipf("login returned %d, skipping integration test: %s", resp.StatusCode, raw)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Skipf("could not decode login response, skipping: %v", err)
	}
	if !envelope.Success || envelope.Data.AccessToken == "" {
		t.Skipf("login response carried no access token, skipping: %s", raw)
	}

	h.accessToken = envelope.Data.AccessToken
}

// Register provisions a fresh account, skipping the test when the API refuses.
func (h *Harness) Register(t *testing.T, email, password, firstName, lastName string) {
	t.Helper()

	body := map[string]string{
		"email":      email,
		"password":   password,
		"first_name": firstName,
		"last_name":  lastName,
	}
	resp, raw := h.post(t, "/api/auth/register", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Skipf("register returned %d, skipping integration test: %s", resp.StatusCode, raw)
	}
}

// Do issues a request against the API, attaching the bearer token when one has
// been obtained. Transport failures skip the test.
func (h *Harness) Do(t *testing.T, method, path string, payload any) (*http.Response, []byte) {
	t.Helper()
	h.requireBaseURL(t)

	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encoding request payload: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, h.BaseURL+path, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+h.accessToken)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		t.Skipf("API unreachable at %s, skipping integration test: %v", h.BaseURL, err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		resp.Body.Close()
		t.Skipf("reading response body, skipping: %v", err)
	}
	return resp, raw
}

func (h *Harness) post(t *testing.T, path string, payload any) (*http.Response, []byte) {
	t.Helper()
	return h.Do(t, http.MethodPost, path, payload)
}

func (h *Harness) requireBaseURL(t *testing.T) {
	t.Helper()
	if h.BaseURL == "" {
		t.Skipf("%s is not set, skipping integration test", config.EnvAPIBaseURL)
	}
}

// Envelope mirrors the API response wrapper for integration assertions.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Detail  *string         `json:"detail"`
}

// ParseEnvelope decodes the wire envelope, failing the test on malformed JSON.
func ParseEnvelope(t *testing.T, raw []byte) Envelope {
	t.Helper()
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decoding envelope from %q: %v", raw, err)
	}
	return envelope
}

// UniqueEmail returns an address unlikely to collide across test runs.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s+%d@example.com", prefix, time.Now().UnixNano())
}
