package models

import "time"

// Operator is a console account with access to the admin API.
type Operator struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"` // "operator" or "admin"
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// OperatorAuthResponse is returned on successful login.
type OperatorAuthResponse struct {
	Token    string   `json:"token"`
	Operator Operator `json:"operator"`
}
