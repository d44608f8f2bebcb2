package entities

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Phone        string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated caller of a use case.
type Principal struct {
	UserID string
	Role   Role
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// Session binds an opaque bearer token to a user until ExpiresAt.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type UserFilter struct {
	Role  Role
	Page  int
	Limit int
}

func (f UserFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type UserPage struct {
	Users []User
	Page  int
	Limit int
	Total int
	Pages int
}
