package security

import (
	"strings"
	"testing"

	"github.com/opsboardhq/opsboard-backend/pkg/config"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Secret#1", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format %q", hash)
	}

	ok, err := VerifyPassword("Secret#1", hash)
	if err != nil {
		t.Fatalf("verify password: %v", err)
	}
	if !ok {
		t.Fatal("expected matching password to verify")
	}

	ok, err = VerifyPassword("wrong", hash)
	if err != nil {
		t.Fatalf("verify wrong password: %v", err)
	}
	if ok {
		t.Fatal("expected mismatch to fail verification")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword("", config.PasswordConfig{}); err == nil {
		t.Fatal("expected empty password to be rejected")
	}
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	for _, encoded := range []string{"", "plain", "$argon2id$v=19$m=x$salt$hash"} {
		if _, err := VerifyPassword("Secret#1", encoded); err == nil {
			t.Fatalf("expected malformed hash %q to be rejected", encoded)
		}
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("Secret#1", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := HashPassword("Secret#1", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct salts to produce distinct hashes")
	}
}
