package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(7, "kebede", "ADMIN", TokenTTL)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := VerifyToken(tok)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if got := claims["username"]; got != "kebede" {
		t.Errorf("username claim = %v, want kebede", got)
	}
	if got := claims["role"]; got != "ADMIN" {
		t.Errorf("role claim = %v, want ADMIN", got)
	}
	// numeric claims come back as float64
	if got := claims["user_id"]; got != float64(7) {
		t.Errorf("user_id claim = %v, want 7", got)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	tok, err := GenerateToken(1, "old", "CASHIER", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := VerifyToken(tok); err == nil {
		t.Fatal("expired token verified")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	tok, err := GenerateToken(1, "a", "ADMIN", TokenTTL)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := VerifyToken(tok + "x"); err == nil {
		t.Fatal("tampered token verified")
	}
}
