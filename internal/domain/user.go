package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between authentication realms.
type Role string

// Define constants for roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered member of the wellness app.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Health data attached to the account (distinct from the
	// weight-management Profile, which lives on the Tracker document).
	DietaryRestrictions []string `bson:"dietaryRestrictions,omitempty" json:"dietaryRestrictions,omitempty"`

	// --- Password reset ---
	// ResetCode holds a bcrypt hash of the emailed code, never the raw code.
	ResetCode       string     `bson:"resetCode,omitempty" json:"-"`
	ResetCodeExpiry *time.Time `bson:"resetCodeExpiry,omitempty" json:"-"`
}

// Admin represents an account in the parallel administration realm.
// Admins live in their own collection and never share credentials with users.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
