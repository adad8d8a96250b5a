package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles and statuses.
const (
	RoleDonor     = "donor"
	RoleAdmin     = "admin"
	RoleVolunteer = "volunteer"

	UserActive  = "active"
	UserBlocked = "blocked"
)

// ValidRole reports whether r is a known user role.
func ValidRole(r string) bool {
	switch r {
	case RoleDonor, RoleAdmin, RoleVolunteer:
		return true
	}
	return false
}

// ValidUserStatus reports whether s is a known user status.
func ValidUserStatus(s string) bool {
	return s == UserActive || s == UserBlocked
}

// User is a platform account: donors, admins, and volunteers.
// Email is the unique lookup key.
type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email"`
	Role   string             `bson:"role" json:"role"`
	Status string             `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
