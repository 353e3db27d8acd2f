package domain

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret1" {
		t.Fatalf("password stored in plaintext")
	}

	u := &User{PasswordHash: hash}
	if !u.VerifyPassword("s3cret1") {
		t.Fatalf("correct password rejected")
	}
	if u.VerifyPassword("wrong") {
		t.Fatalf("wrong password accepted")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleUser) || !ValidRole(RoleAdmin) {
		t.Fatalf("known roles rejected")
	}
	if ValidRole("superuser") {
		t.Fatalf("unknown role accepted")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	}}
	want := "email is required; password is required"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
