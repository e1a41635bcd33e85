package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role enumerates user authorization levels.
type Role string

const (
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// ValidRole reports whether r is a known role value.
func ValidRole(r Role) bool {
	switch r {
	case RoleMember, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered user. Email is the unique business key;
// a user with no explicit role is treated as a plain member.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Image      string             `bson:"image" json:"image"`
	Role       Role               `bson:"role,omitempty" json:"role,omitempty"`
	Subscribed bool               `bson:"subscribed" json:"subscribed"`
}

// EffectiveRole resolves a missing role to member.
func (u *User) EffectiveRole() Role {
	if u.Role == "" {
		return RoleMember
	}
	return u.Role
}

// RegisterUserRequest represents the request to register a user
type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
	Image string `json:"image"`
}

// UpdateRoleRequest represents the request to change a user's role
type UpdateRoleRequest struct {
	Role Role `json:"role" binding:"required"`
}

// SubscribeRequest represents the request to activate a subscription
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RegisterResult reports the outcome of a registration attempt.
// InsertedID is nil when the email was already registered.
type RegisterResult struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}
