package db

import (
	"context"
	"testing"

	"github.com/opsboardhq/opsboard-backend/pkg/config"
)

func TestNewRequiresDSN(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{}, nil); err == nil {
		t.Fatal("expected missing DSN to be rejected")
	}
}

func TestNewSQLiteInMemory(t *testing.T) {
	cfg := config.DBConfig{
		DSN:    "file::memory:?cache=shared",
		Driver: "sqlite",
	}

	client, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if client.DB() == nil {
		t.Fatal("expected gorm handle")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		msg        string
		constraint string
		want       bool
	}{
		{"ERROR: duplicate key value violates unique constraint \"idx_users_email\"", "", true},
		{"UNIQUE constraint failed: users.email", "", true},
		{"ERROR: duplicate key value violates unique constraint \"idx_users_email\"", "idx_users_email", true},
		{"record not found", "", false},
	}
	for _, tc := range cases {
		if got := IsUniqueViolation(errString(tc.msg), tc.constraint); got != tc.want {
			t.Fatalf("IsUniqueViolation(%q, %q) = %v, want %v", tc.msg, tc.constraint, got, tc.want)
		}
	}
	if IsUniqueViolation(nil, "") {
		t.Fatal("nil error must not be a violation")
	}
}

type errString string

func (e errString) Error() string { return string(e) }
