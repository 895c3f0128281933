package types

import (
	"strings"

	pkgerrors "github.com/opsboardhq/opsboard-backend/pkg/errors"
)

// SuccessEnvelope is the body shape of every successful API response.
// Clients discriminate success vs. failure on the Success flag alone.
//
// Serialization policy: all three keys are always present; an absent payload
// renders as an explicit JSON null, never an omitted key.
type SuccessEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// NewSuccessEnvelope builds a success envelope. It never fails; both message
// and data are optional and the payload is stored as-is.
func NewSuccessEnvelope(message string, data any) SuccessEnvelope {
	return SuccessEnvelope{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorEnvelope is the body shape of every error API response. Error carries
// the short machine-oriented identifier; Detail is the optional human-readable
// explanation and renders as null when absent.
type ErrorEnvelope struct {
	Success bool    `json:"success"`
	Error   string  `json:"error"`
	Detail  *string `json:"detail"`
}

// NewErrorEnvelope builds an error envelope. A blank error identifier is
// rejected at construction time.
func NewErrorEnvelope(errorCode string, detail *string) (ErrorEnvelope, error) {
	if strings.TrimSpace(errorCode) == "" {
		return ErrorEnvelope{}, pkgerrors.New(pkgerrors.CodeValidation, "error identifier is required")
	}
	return ErrorEnvelope{
		Success: false,
		Error:   errorCode,
		Detail:  detail,
	}, nil
}
