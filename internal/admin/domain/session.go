package domain

import "time"

const (
	// TokenSubject identifies catalog admin capability tokens.
	TokenSubject = "catalog-admin"
	// ScopeCreatePlants allows POST /api/plants.
	ScopeCreatePlants = "plants:create"
)

type SessionRequest struct {
	AdminKey string `json:"adminKey" binding:"required"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
