package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword_EncodedFormAndRandomness(t *testing.T) {
	svc := NewPasswordHasherService()

	h1, err := svc.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := svc.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !strings.HasPrefix(h1, "$argon2id$v=19$") {
		t.Fatalf("unexpected encoded form: %s", h1)
	}
	if h1 == h2 {
		t.Fatal("expected different hashes for the same password (random salt), got equal")
	}
}

func TestVerifyPassword_Match(t *testing.T) {
	svc := NewPasswordHasherService()

	encoded, err := svc.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := svc.VerifyPassword("s3cret", encoded)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify, got mismatch")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	svc := NewPasswordHasherService()

	encoded, err := svc.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := svc.VerifyPassword("not-the-password", encoded)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if ok {
		t.Fatal("expected mismatch for a wrong password")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	svc := NewPasswordHasherService()

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "not argon2id", encoded: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0"},
		{name: "too few sections", encoded: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA"},
		{name: "bad version", encoded: "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0"},
		{name: "bad salt encoding", encoded: "$argon2id$v=19$m=65536,t=1,p=4$!!!$ZGlnZXN0"},
		{name: "bad digest encoding", encoded: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyPassword("whatever", tt.encoded)
			if !errors.Is(err, ErrMalformedHash) {
				t.Fatalf("expected ErrMalformedHash, got %v", err)
			}
		})
	}
}
