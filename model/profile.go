package model

import "time"

// ProfileEntity represents the profile table entity, linked one-to-one with
// an auth user. Role gates access to the admin screens.
type ProfileEntity struct {
	ID        uint64     `db:"id" json:"id"`
	UserID    uint64     `db:"user_id" json:"user_id"`
	FirstName string     `db:"first_name" json:"first_name"`
	LastName  string     `db:"last_name" json:"last_name"`
	Phone     string     `db:"phone" json:"phone"`
	Role      string     `db:"role" json:"role"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ProfileFilter for querying profiles
type ProfileFilter struct {
	ID     uint64
	UserID uint64
}

// UpdateRoleRequest changes a user's role (admin only)
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}
