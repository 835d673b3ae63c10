package domain

import "strings"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// OwnerKey is the normalized owner identity carried by every persisted record.
// Sources name the underlying field differently (userEmail, email); adapters
// map whichever field their collection uses onto this key.
type OwnerKey string

// Identity is the authenticated user of the current session.
type Identity struct {
	Email string
	Role  string
}

// Resolved reports whether the identity carries an owner key.
func (i Identity) Resolved() bool {
	return strings.TrimSpace(i.Email) != ""
}

// Owner returns the key used to match records owned by this identity.
func (i Identity) Owner() OwnerKey {
	return OwnerKey(i.Email)
}

// IsAdmin reports whether the identity carries the operator role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
