package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role enumerates the platform roles carried in credentials.
type Role string

const (
	RoleBorrower Role = "borrower"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// ParseRole validates a role string against the enum.
func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleBorrower, RoleManager, RoleAdmin:
		return Role(value), true
	}
	return "", false
}

// User is the account record stored in the users collection.
// The password hash is never serialized into responses.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	PasswordHash  string             `bson:"password" json:"-"`
	Role          Role               `bson:"role" json:"role"`
	Suspended     bool               `bson:"suspended" json:"suspended"`
	SuspendReason string             `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
