package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor keeps the well-known fields typed and carries any further
// profile fields the admin posted in the inline map, so nothing is lost
// between the create request and storage.
type Doctor struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string                 `bson:"name" json:"name"`
	Email     string                 `bson:"email" json:"email"`
	Specialty string                 `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Image     string                 `bson:"image,omitempty" json:"image,omitempty"`
	Extra     map[string]interface{} `bson:",inline" json:"-"`
}

func (d Doctor) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(d.Extra)+5)
	for k, v := range d.Extra {
		out[k] = v
	}
	if !d.ID.IsZero() {
		out["id"] = d.ID
	}
	out["name"] = d.Name
	out["email"] = d.Email
	if d.Specialty != "" {
		out["specialty"] = d.Specialty
	}
	if d.Image != "" {
		out["image"] = d.Image
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits the posted body into the typed fields and the
// extras map, so create requests keep fields this struct doesn't name.
func (d *Doctor) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["id"].(string); ok {
		if oid, err := primitive.ObjectIDFromHex(v); err == nil {
			d.ID = oid
		}
	}
	if v, ok := raw["name"].(string); ok {
		d.Name = v
	}
	if v, ok := raw["email"].(string); ok {
		d.Email = v
	}
	if v, ok := raw["specialty"].(string); ok {
		d.Specialty = v
	}
	if v, ok := raw["image"].(string); ok {
		d.Image = v
	}
	for _, known := range []string{"id", "name", "email", "specialty", "image"} {
		delete(raw, known)
	}
	if len(raw) > 0 {
		d.Extra = raw
	}
	return nil
}
