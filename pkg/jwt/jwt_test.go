package jwt

import (
	"testing"
	"time"

	"pharmacare-api/config"
)

func newTestService(accessExpiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: time.Hour,
	})
}

func testIdentity() Identity {
	return Identity{
		ID:        42,
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Roles:     []string{"ROLE_ADMIN"},
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	service := newTestService(time.Minute)

	token, tokenID, err := service.GenerateAccessToken(testIdentity())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if tokenID == "" {
		t.Fatal("empty token ID")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.TokenType != AccessToken {
		t.Errorf("token type = %q, want %q", claims.TokenType, AccessToken)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token ID = %q, want %q", claims.TokenID, tokenID)
	}
	if claims.Identity.ID != 42 || claims.Email != "jane@example.com" {
		t.Errorf("identity not carried: %+v", claims.Identity)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "ROLE_ADMIN" {
		t.Errorf("roles not carried: %v", claims.Roles)
	}
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	service := newTestService(time.Minute)

	token, _, err := service.GenerateRefreshToken(testIdentity())
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("token type = %q, want %q", claims.TokenType, RefreshToken)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	service := newTestService(-time.Minute)

	token, _, err := service.GenerateAccessToken(testIdentity())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := service.ValidateToken(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	service := newTestService(time.Minute)
	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: time.Minute})

	token, _, err := service.GenerateAccessToken(testIdentity())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected error for token signed with another secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := newTestService(time.Minute)
	if _, err := service.ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
