package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered member of the marketplace. A user may own
// places and author reviews; PlaceIDs and ReviewIDs are caches maintained by
// the service layer, the referencing entities are authoritative.
type User struct {
	ID             uuid.UUID   `json:"id"`
	Email          string      `json:"email"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	IsAdmin        bool        `json:"is_admin"`
	HashedPassword string      `json:"-"` // Never expose password hash in JSON
	PlaceIDs       []uuid.UUID `json:"places"`
	ReviewIDs      []uuid.UUID `json:"reviews"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewUser creates a new User with a generated ID and fresh timestamps.
// Returns a *ValidationError if any field is invalid.
//
// The password is not handled here: the caller validates it with
// ValidatePassword and stores only its hash.
func NewUser(email, firstName, lastName string) (*User, error) {
	ts := now()
	user := &User{
		ID:        uuid.New(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		PlaceIDs:  []uuid.UUID{},
		ReviewIDs: []uuid.UUID{},
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if err := validateEmail(u.Email); err != nil {
		return err
	}
	if err := validateText("first_name", u.FirstName, MaxNameLength); err != nil {
		return err
	}
	return validateText("last_name", u.LastName, MaxNameLength)
}

// ValidatePassword checks a plaintext password before it is hashed.
func ValidatePassword(password string) error {
	return validatePassword(password)
}

// FullName returns the user's first and last name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// AddPlace records ownership of a place.
func (u *User) AddPlace(placeID uuid.UUID) {
	u.PlaceIDs = appendUnique(u.PlaceIDs, placeID)
}

// RemovePlace forgets ownership of a place.
func (u *User) RemovePlace(placeID uuid.UUID) {
	u.PlaceIDs = removeID(u.PlaceIDs, placeID)
}

// AddReview records an authored review.
func (u *User) AddReview(reviewID uuid.UUID) {
	u.ReviewIDs = appendUnique(u.ReviewIDs, reviewID)
}

// RemoveReview forgets an authored review.
func (u *User) RemoveReview(reviewID uuid.UUID) {
	u.ReviewIDs = removeID(u.ReviewIDs, reviewID)
}

// GetID returns the user's identifier.
func (u *User) GetID() uuid.UUID { return u.ID }

// Touch refreshes the update timestamp.
func (u *User) Touch() { u.UpdatedAt = now() }

// Attribute exposes the fields that may be used for lookups.
func (u *User) Attribute(name string) (any, bool) {
	switch name {
	case "id":
		return u.ID, true
	case "email":
		return u.Email, true
	case "first_name":
		return u.FirstName, true
	case "last_name":
		return u.LastName, true
	case "is_admin":
		return u.IsAdmin, true
	default:
		return nil, false
	}
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	c := *u
	c.PlaceIDs = cloneIDs(u.PlaceIDs)
	c.ReviewIDs = cloneIDs(u.ReviewIDs)
	return &c
}

// UserPatch lists the user fields that may change after creation.
// Nil fields are left untouched.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
	IsAdmin   *bool

	// Password is the plaintext replacement; it is validated but never
	// applied. The service hashes it into HashedPassword.
	Password       *string
	HashedPassword *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil &&
		p.IsAdmin == nil && p.Password == nil && p.HashedPassword == nil
}

// Validate checks every provided field.
func (p UserPatch) Validate() error {
	if p.Email != nil {
		if err := validateEmail(*p.Email); err != nil {
			return err
		}
	}
	if p.FirstName != nil {
		if err := validateText("first_name", *p.FirstName, MaxNameLength); err != nil {
			return err
		}
	}
	if p.LastName != nil {
		if err := validateText("last_name", *p.LastName, MaxNameLength); err != nil {
			return err
		}
	}
	if p.Password != nil {
		if err := validatePassword(*p.Password); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies the provided fields onto u.
func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
	if p.HashedPassword != nil {
		u.HashedPassword = *p.HashedPassword
	}
}
