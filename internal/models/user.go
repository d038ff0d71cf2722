package models

import "time"

// User is an application user created on first successful Google login.
// Email is the durable identity; name and picture are captured once at
// creation and never synced with the provider afterwards.
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Picture   string    `bson:"picture,omitempty" json:"picture,omitempty"` // base64-encoded image
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
