package auth

import (
	"testing"
	"time"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", 5*time.Minute, time.Hour)

	t.Run("access token round trip", func(t *testing.T) {
		token, err := manager.GenerateAccess(42)
		if err != nil {
			t.Fatalf("GenerateAccess failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.TokenType != TokenTypeAccess {
			t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeAccess)
		}
		id, err := claims.UserID()
		if err != nil {
			t.Fatalf("UserID failed: %v", err)
		}
		if id != 42 {
			t.Errorf("UserID = %d, want 42", id)
		}
		if claims.ID == "" {
			t.Error("expected a jti claim")
		}
	})

	t.Run("refresh token carries refresh type", func(t *testing.T) {
		token, err := manager.GenerateRefresh(42)
		if err != nil {
			t.Fatalf("GenerateRefresh failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.TokenType != TokenTypeRefresh {
			t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeRefresh)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute, -time.Minute)
		token, err := expired.GenerateAccess(42)
		if err != nil {
			t.Fatalf("GenerateAccess failed: %v", err)
		}

		if _, err := manager.Validate(token); err == nil {
			t.Error("expected error for expired token, got nil")
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		other := NewJWTManager("other-secret", 5*time.Minute, time.Hour)
		token, err := other.GenerateAccess(42)
		if err != nil {
			t.Fatalf("GenerateAccess failed: %v", err)
		}

		if _, err := manager.Validate(token); err == nil {
			t.Error("expected error for token signed with another secret, got nil")
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, err := manager.Validate("not-a-token"); err == nil {
			t.Error("expected error for malformed token, got nil")
		}
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("test_password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "test_password" {
		t.Error("hash equals the plaintext password")
	}

	if !CheckPassword(hash, "test_password") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "wrong_password") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
