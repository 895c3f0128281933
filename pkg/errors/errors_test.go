package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Errorf("%s: expected status %d, got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("mystery"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(CodeDependency, cause, "redis ping")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to satisfy errors.Is")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
	if err.Message() != "redis ping" {
		t.Fatalf("unexpected message %q", err.Message())
	}
}

func TestGetCodeAndMessage(t *testing.T) {
	typed := New(CodeNotFound, "user missing")
	wrapped := fmt.Errorf("handler: %w", typed)

	if GetCode(wrapped) != CodeNotFound {
		t.Fatalf("expected not_found through the chain, got %s", GetCode(wrapped))
	}
	if GetMessage(wrapped) != "user missing" {
		t.Fatalf("unexpected message %q", GetMessage(wrapped))
	}

	untyped := fmt.Errorf("boom")
	if GetCode(untyped) != CodeInternal {
		t.Fatalf("untyped errors must collapse to internal, got %s", GetCode(untyped))
	}
	if GetMessage(untyped) != "boom" {
		t.Fatalf("unexpected untyped message %q", GetMessage(untyped))
	}
}

func TestDumpWalksChain(t *testing.T) {
	root := fmt.Errorf("disk full")
	mid := Wrap(CodeInternal, root, "write row")

	info := Dump(mid)
	if info.Code != string(CodeInternal) {
		t.Fatalf("unexpected code %q", info.Code)
	}
	if len(info.Chain) < 2 {
		t.Fatalf("expected chain to include the cause, got %v", info.Chain)
	}
}
