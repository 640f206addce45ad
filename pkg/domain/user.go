package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// ParseRole accepts "admin" or "standard".
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleStandard:
		return Role(s), true
	default:
		return "", false
	}
}

// AppUser maps an authenticated identity to its role.
type AppUser struct {
	ID        string
	UserID    string // identity subject, unique
	Email     string
	Name      string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u AppUser) IsAdmin() bool { return u.Role == RoleAdmin }

// DefaultUserName is used when neither a display name nor an email is known.
const DefaultUserName = "User"

// DeriveName picks the name recorded for a new app user: the display name,
// else the local part of the email, else DefaultUserName.
func DeriveName(displayName, email string) string {
	if n := strings.TrimSpace(displayName); n != "" {
		return n
	}
	if local, _, _ := strings.Cut(strings.TrimSpace(email), "@"); local != "" {
		return local
	}
	return DefaultUserName
}
