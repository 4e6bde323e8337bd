package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

// User carries the well-known profile fields plus whatever else the
// client supplied on upsert; the inline map keeps those extras through
// storage round-trips.
type User struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	Email string                 `bson:"email" json:"email"`
	Role  string                 `bson:"role,omitempty" json:"role,omitempty"` // "" or "admin"
	Name  string                 `bson:"name,omitempty" json:"name,omitempty"`
	Phone string                 `bson:"phone,omitempty" json:"phone,omitempty"`
	Extra map[string]interface{} `bson:",inline" json:"-"`
}

// IsAdmin is nil-safe so callers can feed it a lookup result directly.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// MarshalJSON flattens the extra fields into the response object. The
// stored password hash never leaves the API.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(u.Extra)+5)
	for k, v := range u.Extra {
		out[k] = v
	}
	delete(out, "password")
	if !u.ID.IsZero() {
		out["id"] = u.ID
	}
	out["email"] = u.Email
	if u.Role != "" {
		out["role"] = u.Role
	}
	if u.Name != "" {
		out["name"] = u.Name
	}
	if u.Phone != "" {
		out["phone"] = u.Phone
	}
	return json.Marshal(out)
}
