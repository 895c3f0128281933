package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPassword = "integration-pw-123456"

func TestHealthLive(t *testing.T) {
	h := NewHarness()

	resp, raw := h.Do(t, http.MethodGet, "/health/live", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	envelope := ParseEnvelope(t, raw)
	require.True(t, envelope.Success)
	require.Equal(t, "alive", envelope.Message)
}

func TestLoginAndMe(t *testing.T) {
	h := NewHarness()
	email := UniqueEmail("login-me")

	h.Register(t, email, testPassword, "Integration", "Suite")
	h.Login(t, email, testPassword)

	resp, raw := h.Do(t, http.MethodGet, "/api/auth/me", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	envelope := ParseEnvelope(t, raw)
	require.True(t, envelope.Success)

	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &me))
	require.Equal(t, email, me.Email)
}

func TestMeWithoutTokenIsRejected(t *testing.T) {
	h := NewHarness()

	resp, raw := h.Do(t, http.MethodGet, "/api/auth/me", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	envelope := ParseEnvelope(t, raw)
	require.False(t, envelope.Success)
	require.Equal(t, "unauthorized", envelope.Error)
}

func TestLoginWithBadPasswordIsRejected(t *testing.T) {
	h := NewHarness()
	email := UniqueEmail("bad-pw")

	h.Register(t, email, testPassword, "Integration", "Suite")

	resp, raw := h.Do(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": "definitely-wrong"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	envelope := ParseEnvelope(t, raw)
	require.False(t, envelope.Success)
	require.Equal(t, "unauthorized", envelope.Error)
	require.Nil(t, envelope.Detail)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	h := NewHarness()
	email := UniqueEmail("logout")

	h.Register(t, email, testPassword, "Integration", "Suite")
	h.Login(t, email, testPassword)

	resp, _ := h.Do(t, http.MethodPost, "/api/auth/logout", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw := h.Do(t, http.MethodGet, "/api/auth/me", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode, string(raw))
}
