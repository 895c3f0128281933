package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opsboardhq/opsboard-backend/internal/auth"
	"github.com/opsboardhq/opsboard-backend/internal/users"
	pkgerrors "github.com/opsboardhq/opsboard-backend/pkg/errors"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	loginResp    *auth.LoginResponse
	loginErr     error
	registerResp *auth.LoginResponse
	registerErr  error

	lastLogin    *auth.LoginRequest
	lastRegister *auth.RegisterRequest
}

func (s *stubAuthService) Login(_ context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	s.lastLogin = &req
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) Register(_ context.Context, req auth.RegisterRequest) (*auth.LoginResponse, error) {
	s.lastRegister = &req
	return s.registerResp, s.registerErr
}

type envelopeBody struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Detail  *string         `json:"detail"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelopeBody {
	t.Helper()
	var body envelopeBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthLoginSuccess(t *testing.T) {
	svc := &stubAuthService{
		loginResp: &auth.LoginResponse{
			AccessToken:  "token-abc",
			RefreshToken: "refresh-xyz",
			User:         &users.UserDTO{Email: "ada@example.com"},
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"pw-123456"}`))
	rec := httptest.NewRecorder()

	AuthLogin(svc, nil)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeEnvelope(t, rec)
	require.True(t, body.Success)
	require.Equal(t, "login successful", body.Message)

	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Equal(t, "token-abc", data.AccessToken)
	require.Equal(t, "ada@example.com", svc.lastLogin.Email)
}

func TestAuthLoginValidation(t *testing.T) {
	svc := &stubAuthService{}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"not-an-email","password":""}`))
	rec := httptest.NewRecorder()

	AuthLogin(svc, nil)(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	require.False(t, body.Success)
	require.Equal(t, "validation_error", body.Error)
	require.NotNil(t, body.Detail)
	require.Nil(t, svc.lastLogin, "service must not be called on invalid input")
}

func TestAuthLoginRejectsUnknownFields(t *testing.T) {
	svc := &stubAuthService{}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"a@b.com","password":"pw","extra":true}`))
	rec := httptest.NewRecorder()

	AuthLogin(svc, nil)(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "validation_error", decodeEnvelope(t, rec).Error)
}

func TestAuthLoginUnauthorized(t *testing.T) {
	svc := &stubAuthService{
		loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials"),
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"wrong-pw"}`))
	rec := httptest.NewRecorder()

	AuthLogin(svc, nil)(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeEnvelope(t, rec)
	require.False(t, body.Success)
	require.Equal(t, "unauthorized", body.Error)
	require.Nil(t, body.Detail, "credential failures must not leak detail")
}

func TestAuthRegisterSuccess(t *testing.T) {
	svc := &stubAuthService{
		registerResp: &auth.LoginResponse{
			AccessToken:  "token-abc",
			RefreshToken: "refresh-xyz",
			User:         &users.UserDTO{Email: "new@example.com"},
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"new@example.com","password":"pw-123456","first_name":"Grace","last_name":"Hopper"}`))
	rec := httptest.NewRecorder()

	AuthRegister(svc, nil)(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	require.True(t, body.Success)
	require.Equal(t, "registration successful", body.Message)
}

func TestAuthRegisterConflict(t *testing.T) {
	svc := &stubAuthService{
		registerErr: pkgerrors.New(pkgerrors.CodeConflict, "email already registered"),
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"dup@example.com","password":"pw-123456","first_name":"A","last_name":"B"}`))
	rec := httptest.NewRecorder()

	AuthRegister(svc, nil)(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	require.Equal(t, "conflict", body.Error)
	require.NotNil(t, body.Detail)
	require.Equal(t, "email already registered", *body.Detail)
}
