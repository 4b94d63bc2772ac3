package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Auth providers
const (
	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
)

// ProviderAccount links a user to an external identity.
type ProviderAccount struct {
	Provider          string `bson:"provider" json:"provider"`
	ProviderAccountID string `bson:"provider_account_id" json:"provider_account_id"`
}

// User represents a registered user
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"` // bcrypt hash, empty for OAuth-only users
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Provider  string             `bson:"provider" json:"provider"`
	Accounts  []ProviderAccount  `bson:"accounts,omitempty" json:"accounts,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
