package utils

import (
	"testing"
	"time"

	"dateplanner/config"
)

func TestTokenRoundtrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user_1", "user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	id, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken failed: %v", err)
	}
	if id != "user_1" {
		t.Errorf("subject = %q, want user_1", id)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user_1", "user@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, err := ExtractIDFromToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user_1", "user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	config.AppConfig.JWTSecret = "other-secret"
	if _, err := ExtractIDFromToken(token); err == nil {
		t.Error("expected token signed with a different secret to be rejected")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("session-token")
	b := HashToken("session-token")
	if a != b {
		t.Errorf("hash is not deterministic: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if HashToken("other-token") == a {
		t.Error("distinct tokens must not collide")
	}
}
