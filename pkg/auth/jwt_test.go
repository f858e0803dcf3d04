package auth

import (
	"strings"
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := NewSessionToken(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}

	claims, err := Parse(token, "test-secret")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.Sub != 42 {
		t.Errorf("Expected sub 42, got %d", claims.Sub)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewSessionToken(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}

	if _, err := Parse(token, "other-secret"); err == nil {
		t.Error("Expected error for token signed with a different secret")
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	token, err := NewSessionToken(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}

	// Flip one byte in the payload segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("Expected 3 token segments, got %d", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := Parse(tampered, "test-secret"); err == nil {
		t.Error("Expected error for tampered token")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := NewSessionToken(42, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}

	if _, err := Parse(token, "test-secret"); err == nil {
		t.Error("Expected error for expired token")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not-a-token", "test-secret"); err == nil {
		t.Error("Expected error for malformed token")
	}
}
