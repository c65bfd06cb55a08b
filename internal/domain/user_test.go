package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("a@b.com", "Ada", "Byron")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if user.Email != "a@b.com" {
		t.Errorf("Expected email %s, got %s", "a@b.com", user.Email)
	}
	if user.IsAdmin {
		t.Error("Expected new user not to be an admin")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}
	if user.PlaceIDs == nil || user.ReviewIDs == nil {
		t.Error("Expected initialised id lists")
	}
	if user.FullName() != "Ada Byron" {
		t.Errorf("Expected full name %q, got %q", "Ada Byron", user.FullName())
	}
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		firstName string
		lastName  string
		wantErr   error
		wantField string
	}{
		{"empty email", "", "A", "B", ErrEmptyField, "email"},
		{"blank email", "   ", "A", "B", ErrEmptyField, "email"},
		{"missing at", "ab.com", "A", "B", ErrInvalidEmail, "email"},
		{"missing domain dot", "a@bcom", "A", "B", ErrInvalidEmail, "email"},
		{"trailing dot", "a@b.", "A", "B", ErrInvalidEmail, "email"},
		{"empty local part", "@b.com", "A", "B", ErrInvalidEmail, "email"},
		{"blank first name", "a@b.com", " ", "B", ErrEmptyField, "first_name"},
		{"blank last name", "a@b.com", "A", "", ErrEmptyField, "last_name"},
		{"long first name", "a@b.com", strings.Repeat("x", MaxNameLength+1), "B", ErrTooLong, "first_name"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := NewUser(tc.email, tc.firstName, tc.lastName)
			if user != nil {
				t.Errorf("Expected nil user on error, got %+v", user)
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Expected error %v, got %v", tc.wantErr, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected error to be a validation error, got %v", err)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) || vErr.Field != tc.wantField {
				t.Errorf("Expected validation error on field %s, got %v", tc.wantField, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("1234"); err != nil {
		t.Errorf("Expected short password to be accepted, got %v", err)
	}
	if err := ValidatePassword(""); !errors.Is(err, ErrEmptyField) {
		t.Errorf("Expected %v, got %v", ErrEmptyField, err)
	}
	if err := ValidatePassword(strings.Repeat("p", MaxPasswordBytes+1)); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("Expected %v, got %v", ErrPasswordTooLong, err)
	}
}

func TestUserPatch(t *testing.T) {
	user, err := NewUser("a@b.com", "A", "B")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	original := user.Clone()

	email := "new@example.org"
	admin := true
	patch := UserPatch{Email: &email, IsAdmin: &admin}
	if err := patch.Validate(); err != nil {
		t.Fatalf("Expected valid patch, got %v", err)
	}
	patch.Apply(user)

	if user.Email != email || !user.IsAdmin {
		t.Errorf("Expected patched fields, got %+v", user)
	}
	if user.FirstName != original.FirstName || user.LastName != original.LastName {
		t.Error("Expected untouched fields to keep their values")
	}
	if user.ID != original.ID || !user.CreatedAt.Equal(original.CreatedAt) {
		t.Error("Expected ID and CreatedAt to be immutable")
	}

	bad := "not-an-email"
	if err := (UserPatch{Email: &bad}).Validate(); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("Expected %v, got %v", ErrInvalidEmail, err)
	}

	plain := "secret"
	if err := (UserPatch{Password: &plain}).Validate(); err != nil {
		t.Errorf("Expected password patch to validate, got %v", err)
	}
	(UserPatch{Password: &plain}).Apply(user)
	if user.HashedPassword != "" {
		t.Error("Expected plaintext password never to be applied")
	}

	if !(UserPatch{}).IsEmpty() {
		t.Error("Expected zero patch to be empty")
	}
}

func TestUserIDLists(t *testing.T) {
	user, _ := NewUser("a@b.com", "A", "B")
	placeID := uuid.New()
	reviewID := uuid.New()

	user.AddPlace(placeID)
	user.AddPlace(placeID)
	user.AddReview(reviewID)
	if len(user.PlaceIDs) != 1 || len(user.ReviewIDs) != 1 {
		t.Fatalf("Expected one place and one review, got %v and %v", user.PlaceIDs, user.ReviewIDs)
	}

	clone := user.Clone()
	user.RemovePlace(placeID)
	user.RemoveReview(reviewID)
	if len(user.PlaceIDs) != 0 || len(user.ReviewIDs) != 0 {
		t.Errorf("Expected empty lists, got %v and %v", user.PlaceIDs, user.ReviewIDs)
	}
	if len(clone.PlaceIDs) != 1 {
		t.Error("Expected clone to be unaffected by changes to the original")
	}
}

func TestUserAttribute(t *testing.T) {
	user, _ := NewUser("a@b.com", "A", "B")

	v, ok := user.Attribute("email")
	if !ok || v != "a@b.com" {
		t.Errorf("Expected email attribute, got %v (%v)", v, ok)
	}
	if _, ok := user.Attribute("hashed_password"); ok {
		t.Error("Expected password hash not to be a lookup attribute")
	}
}
