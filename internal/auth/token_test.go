package auth

import (
	"testing"

	"github.com/spec-kit/lms-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 5)

	token, exp, err := tm.GenerateToken("ada", domain.RoleTeacher)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if exp.IsZero() {
		t.Fatal("expected expiry")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "ada" {
		t.Fatalf("subject = %q, want username", claims.Subject)
	}
	if claims.Role != domain.RoleTeacher {
		t.Fatalf("role = %q", claims.Role)
	}
}

func TestParseToken_WrongSecretRejected(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 5).GenerateToken("ada", domain.RoleStudent)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewTokenManager("secret-b", 5).ParseToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pw", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw" {
		t.Fatal("hash equals plaintext")
	}
	if err := ComparePassword(hash, "pw"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := ComparePassword(hash, "other"); err == nil {
		t.Fatal("wrong password accepted")
	}
}
