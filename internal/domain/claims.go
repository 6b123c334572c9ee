package domain

import "time"

type Role string

const (
	RoleClient     Role = "client"
	RoleSuperAdmin Role = "super_admin"
)

// Claims are the unverified fields lifted out of the bearer credential's
// payload segment. They carry no cryptographic guarantee and are only good
// enough to decide which screens to offer; the backend re-checks the
// credential on every privileged call.
type Claims struct {
	Role      Role
	UserID    UserID
	ExpiresAt time.Time
}

// Expired reports whether the advisory expiry has passed. Display only;
// nothing client-side refuses an expired credential.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
