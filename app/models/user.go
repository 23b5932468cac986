package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Role      Role      `json:"role,omitempty"`
}

// FullName joins first and last name the way claim listings display it.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Profile is the submitter identity attached to claims in the review queue.
type Profile struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
