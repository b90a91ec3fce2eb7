package models

import "time"

// User roles
const (
	RoleClient = "client"
	RoleLawyer = "lawyer"
)

// User is a client or lawyer account. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Password     string    `json:"-"`
	Role         string    `json:"role"`
	Specialities []string  `json:"specialities,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasSpeciality reports whether a lawyer covers the given speciality.
func (u *User) HasSpeciality(speciality string) bool {
	for _, s := range u.Specialities {
		if s == speciality {
			return true
		}
	}
	return false
}

// PublicUser is the directory/auth view of a user.
type PublicUser struct {
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Specialities []string `json:"specialities,omitempty"`
}

// Public returns the serializable view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		UserID:       u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Specialities: u.Specialities,
	}
}
