package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignVerifyRoundtrip(t *testing.T) {
	j := JWT{Secret: []byte("test-secret"), TokenTTL: time.Hour}

	tok, expiresAt, err := j.Sign(Claims{
		Email: "founder@example.com",
		Role:  "founder",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "user-123",
		},
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expiry in the past: %s", expiresAt)
	}

	claims, err := j.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("subject = %q", claims.Subject)
	}
	if claims.Email != "founder@example.com" || claims.Role != "founder" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := JWT{Secret: []byte("secret-a"), TokenTTL: time.Hour}
	verifier := JWT{Secret: []byte("secret-b")}

	tok, _, err := signer.Sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-123"}})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifier.Verify(tok); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	j := JWT{Secret: []byte("test-secret")}

	tok, _, err := j.Sign(Claims{})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := j.Verify(tok); err == nil {
		t.Fatal("expected error for token without subject")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	j := JWT{Secret: []byte("test-secret")}
	if _, err := j.Verify("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":  "abc",
		"bearer abc":  "abc",
		"Basic abc":   "",
		"abc":         "",
		"":            "",
		"Bearer  xy ": "xy",
	}
	for header, want := range cases {
		if got := bearerToken(header); got != want {
			t.Fatalf("bearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}
