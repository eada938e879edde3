package auth_test

import (
	"errors"
	"testing"

	"github.com/shashiranjanraj/storefront/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	tm, err := auth.NewTokenManager("a-perfectly-fine-secret")
	if err != nil {
		t.Fatalf("new token manager: %v", err)
	}

	token, err := tm.Generate(42, "ADMIN")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := tm.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if claims.Role != "ADMIN" {
		t.Errorf("role = %q, want ADMIN", claims.Role)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer, _ := auth.NewTokenManager("issuer-secret")
	verifier, _ := auth.NewTokenManager("different-secret")

	token, err := issuer.Generate(1, "CUSTOMER")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.Validate(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	tm, _ := auth.NewTokenManager("a-perfectly-fine-secret")

	if _, err := tm.Validate("not.a.token"); err == nil {
		t.Error("expected validation to fail for garbage input")
	}
}

func TestEmptySecret(t *testing.T) {
	if _, err := auth.NewTokenManager(""); !errors.Is(err, auth.ErrEmptySecret) {
		t.Errorf("got %v, want ErrEmptySecret", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !auth.CheckPassword(hash, "hunter2hunter2") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
