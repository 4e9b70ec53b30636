package domain

import "time"

// Role grants access to groups of routes.
type Role string

const (
	// RoleEditor may mutate teams, players, preferences and run imports.
	RoleEditor Role = "editor"
)

// Token describes an issued access token.
type Token struct {
	Subject   string
	Role      Role
	ExpiresAt time.Time
	IssuedAt  time.Time
}
