package utils

import (
	"testing"

	"medical-backend-server/internal/config"
	"medical-backend-server/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                 "test-secret",
		JWTRefreshSecret:          "test-refresh-secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 168,
	}
}

func testUser() *models.User {
	u := &models.User{Username: "alice", Email: "alice@example.com", Role: models.RolePatient}
	u.ID = "11111111-2222-3333-4444-555555555555"
	return u
}

func TestGenerateAndValidateTokens(t *testing.T) {
	cfg := testConfig()
	user := testUser()

	access, refresh, err := GenerateTokens(user, cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("empty token")
	}

	claims, err := ValidateToken(access, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("validate access: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("user id: got %q, want %q", claims.UserID, user.ID)
	}

	claims, err = ValidateToken(refresh, cfg.JWTRefreshSecret)
	if err != nil {
		t.Fatalf("validate refresh: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("refresh user id: got %q, want %q", claims.UserID, user.ID)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig()

	access, _, err := GenerateTokens(testUser(), cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateToken(access, "some-other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestValidateTokenRefreshNotAcceptedAsAccess(t *testing.T) {
	cfg := testConfig()

	_, refresh, err := GenerateTokens(testUser(), cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateToken(refresh, cfg.JWTSecret); err == nil {
		t.Fatal("refresh token validated against the access secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token", "secret"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestClaimsCarryNoRole(t *testing.T) {
	cfg := testConfig()
	user := testUser()
	user.Role = models.RoleAdmin

	access, _, err := GenerateTokens(user, cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(access, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	// the struct has no role field at all; this pins the subject too
	if claims.Subject != user.ID {
		t.Errorf("subject: got %q, want %q", claims.Subject, user.ID)
	}
}
