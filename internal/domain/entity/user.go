package entity

import "time"

// User represents a registered user in the system
type User struct {
	ID             string     `bson:"_id,omitempty" json:"id"`
	Email          string     `bson:"email" json:"email"`
	PasswordHash   string     `bson:"password" json:"-"`
	FullName       string     `bson:"full_name" json:"fullName"`
	ProfilePicture *string    `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`
	RoleID         string     `bson:"role" json:"-"`
	Status         UserStatus `bson:"status" json:"status"`
	IsBanned       bool       `bson:"is_banned" json:"isBanned"`
	Specialization *string    `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Expertise      *string    `bson:"expertise,omitempty" json:"expertise,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updatedAt"`
}

// UserStatus is the account state. IsBanned is kept in lockstep with it:
// status is the source of truth and IsBanned is always status == INACTIVE.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)
