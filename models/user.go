package models

import "time"

// User represents an account entity used for registration, login and
// profile management. It contains identity attributes and credential data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on insert.
	UserID int64 `json:"-"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique user identifier used during authentication.
	// Uniqueness is enforced at the storage layer.
	Email string `json:"email"`

	// Password stores the user's credential as an opaque string.
	// The data layer compares it verbatim; any hashing or key derivation
	// is the responsibility of the session/auth collaborator.
	Password string `json:"-"`

	// BirthDate is the user's birth date in "YYYY-MM-DD" form.
	BirthDate string `json:"birth_date"`

	// ProfileImage is an optional reference (URI or path) to the user's
	// profile picture. Nil when the user never set one.
	ProfileImage *string `json:"profile_image,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
