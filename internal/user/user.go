package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account. The password is only ever held as a bcrypt
// hash; no code path stores or returns plaintext after registration.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Gender       string    `json:"gender"`
	DOB          string    `json:"dob"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProfileUpdate describes a partial profile mutation. Nil fields are left
// untouched in the stored document. Username may be set to the empty string
// here, unlike at registration where it is required.
type ProfileUpdate struct {
	Username *string
	Gender   *string
	DOB      *string
}

// Empty reports whether the update would change nothing.
func (p ProfileUpdate) Empty() bool {
	return p.Username == nil && p.Gender == nil && p.DOB == nil
}
