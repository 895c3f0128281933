package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/opsboardhq/opsboard-backend/pkg/errors"
	"github.com/opsboardhq/opsboard-backend/pkg/logger"
	"github.com/opsboardhq/opsboard-backend/pkg/types"
)

// WriteSuccess emits a 200 success envelope around the payload.
func WriteSuccess(w http.ResponseWriter, message string, data any) {
	WriteSuccessStatus(w, http.StatusOK, message, data)
}

// WriteSuccessStatus emits a success envelope with an explicit status code.
func WriteSuccessStatus(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, types.NewSuccessEnvelope(message, data))
}

// WriteError maps the error onto the envelope contract: the code string goes
// into the error field, the sanitized message into detail. Untyped errors
// collapse to internal_error so nothing leaks to clients.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	var detail *string
	if meta.DetailAllowed {
		msg := meta.PublicMessage
		if m := typed.Message(); m != "" {
			msg = m
		}
		detail = &msg
	}

	envelope, buildErr := types.NewErrorEnvelope(string(typed.Code()), detail)
	if buildErr != nil {
		envelope, _ = types.NewErrorEnvelope(string(pkgerrors.CodeInternal), nil)
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)
		ctx = logg.WithFields(ctx, map[string]any{
			"error":       dump.TopMessage,
			"error_code":  dump.Code,
			"error_chain": dump.Chain,
		})
		logg.Error(ctx, "request.error", err)
	}

	writeJSON(w, meta.HTTPStatus, envelope)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
