package security

import (
	"errors"
	"testing"
	"time"
)

func newTestJWTManager(ttl time.Duration) *JWTManager {
	return NewJWTManager("0123456789abcdef0123456789abcdef", "vouchap-crm", "vouchap-crm-api", ttl)
}

func TestJWTMintAndParse(t *testing.T) {
	m := newTestJWTManager(time.Hour)

	token, err := m.Mint("user-1", "alice@example.com", "Alice", "admin")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
	if claims.Email != "alice@example.com" || claims.CRMRole != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatal("expected a token id")
	}
}

func TestJWTParseExpired(t *testing.T) {
	m := newTestJWTManager(-time.Minute)

	token, err := m.Mint("user-1", "alice@example.com", "Alice", "ops")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := m.Parse(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestJWTParseWrongSecret(t *testing.T) {
	m := newTestJWTManager(time.Hour)
	other := NewJWTManager("ffffffffffffffffffffffffffffffff", "vouchap-crm", "vouchap-crm-api", time.Hour)

	token, err := m.Mint("user-1", "alice@example.com", "Alice", "ops")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTParseGarbage(t *testing.T) {
	m := newTestJWTManager(time.Hour)
	if _, err := m.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
