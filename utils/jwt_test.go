package utils

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret-for-utils")
	os.Exit(m.Run())
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("admin@example.com")
	if err != nil {
		t.Fatalf("expected token, got error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("expected valid token, got error: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
	if claims.Issuer != "sorveteria-backend" {
		t.Errorf("unexpected issuer %q", claims.Issuer)
	}
}

func TestValidateGarbageToken(t *testing.T) {
	if _, err := ValidateToken("isto.não.é-um-jwt"); err == nil {
		t.Error("expected error for a malformed token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("admin@example.com")
	if err != nil {
		t.Fatal(err)
	}

	os.Setenv("JWT_SECRET", "outro-segredo")
	defer os.Setenv("JWT_SECRET", "test-secret-for-utils")

	if _, err := ValidateToken(token); err == nil {
		t.Error("expected signature validation to fail")
	}
}
