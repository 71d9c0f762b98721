package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account in the users collection. Email is the logical
// unique key; the role only ever moves from "user" to "admin".
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// IsAdmin reports whether the stored role grants admin access.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
