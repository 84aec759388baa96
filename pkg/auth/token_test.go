package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/makerstech/storefront-backend/pkg/config"
)

func mintToken(t *testing.T, secret, issuer, email string) string {
	t.Helper()
	claims := &IdentityClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestParseIdentityToken_Valid(t *testing.T) {
	cfg := config.IdentityConfig{Secret: "test-secret", Issuer: "makers-identity"}
	token := mintToken(t, cfg.Secret, cfg.Issuer, "admin@makers.tech")

	claims, err := ParseIdentityToken(cfg, token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.AccountID() != "admin@makers.tech" {
		t.Fatalf("unexpected account id %q", claims.AccountID())
	}
}

func TestParseIdentityToken_WrongSecret(t *testing.T) {
	cfg := config.IdentityConfig{Secret: "test-secret", Issuer: "makers-identity"}
	token := mintToken(t, "other-secret", cfg.Issuer, "admin@makers.tech")

	if _, err := ParseIdentityToken(cfg, token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestParseIdentityToken_WrongIssuer(t *testing.T) {
	cfg := config.IdentityConfig{Secret: "test-secret", Issuer: "makers-identity"}
	token := mintToken(t, cfg.Secret, "someone-else", "admin@makers.tech")

	if _, err := ParseIdentityToken(cfg, token); err == nil {
		t.Fatal("expected issuer error")
	}
}

func TestParseIdentityToken_MissingSecret(t *testing.T) {
	if _, err := ParseIdentityToken(config.IdentityConfig{}, "anything"); err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestAccountID_FallsBackToSubject(t *testing.T) {
	claims := &IdentityClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "ops@makers.tech"}}
	if got := claims.AccountID(); got != "ops@makers.tech" {
		t.Fatalf("unexpected account id %q", got)
	}
}
