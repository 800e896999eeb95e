package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only role value with special meaning.  Users without a
// role field are regular customers.
const RoleAdmin = "admin"

// User is the typed view of a document in the users collection.  Only the
// fields used by the admin check are mapped; the rest of the login payload
// stays in the document.
type User struct {
    ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
    Email string             `bson:"email" json:"email"`
    Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
