package service

import (
	"errors"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.authService.Register(RegisterInput{
		Email:       "Ivan@Example.com",
		Username:    "ivan",
		PhoneNumber: "+359890012345",
		FirstName:   "Ivan",
		LastName:    "Petrov",
		Password:    "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "ivan@example.com" {
		t.Fatalf("expected lowercased email, got %s", user.Email)
	}
	if user.PasswordHash == "s3cret-pass" || user.PasswordHash == "" {
		t.Fatal("expected hashed password")
	}

	logged, token, _, err := env.authService.Login("ivan@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected token")
	}
	if logged.LastLoginAt == nil {
		t.Fatal("expected last login timestamp")
	}

	claims, err := env.authService.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.IsSuperuser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	input := RegisterInput{
		Email:       "dup@example.com",
		Username:    "first",
		PhoneNumber: "+359890012346",
		Password:    "s3cret-pass",
	}
	if _, err := env.authService.Register(input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	input.Username = "second"
	input.PhoneNumber = "+359890012347"
	if _, err := env.authService.Register(input); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.authService.Register(RegisterInput{
		Email:       "maria@example.com",
		Username:    "maria",
		PhoneNumber: "+359890012348",
		Password:    "correct-pass",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, _, err := env.authService.Login("maria@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := env.authService.Login("nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRegister_CollectsValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.authService.Register(RegisterInput{
		Email:    "not-an-email",
		Password: "short",
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// email, username, phone_number, password
	if len(verr.Fields) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(verr.Fields), verr)
	}
}
