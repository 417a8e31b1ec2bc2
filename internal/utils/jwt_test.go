package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	profileID := int64(123)
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, profileID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.ProfileID != profileID {
		t.Errorf("expected ProfileID=%d, got %d", profileID, token.ProfileID)
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	generated, err := GenerateJWTToken(issuer, 42, time.Hour, key)
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.ProfileID != 42 {
		t.Errorf("expected ProfileID=42, got %d", parsed.ProfileID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, err := GenerateJWTToken("iss", 42, time.Hour, "right-key")
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(generated.SignedString, "wrong-key", "iss")
	if err == nil {
		t.Fatal("expected signature verification error, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("real-issuer", 42, time.Hour, "key")
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(generated.SignedString, "key", "other-issuer")
	if err == nil {
		t.Fatal("expected issuer validation error, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken("iss", 42, -time.Minute, "key")
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(generated.SignedString, "key", "iss")
	if err == nil {
		t.Fatal("expected expiry validation error, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing token", "Bearer ", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
