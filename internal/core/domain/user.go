package domain

import "time"

// User is the minimal authentication surface. Tenant identity and license
// validity are carried as JWT claims derived from this record; the core
// never inspects users beyond the pre-verified tenant ID.
type User struct {
	UserID           string    `json:"userID"`
	TenantID         string    `json:"tenantID"`
	Name             string    `json:"name"`
	Username         string    `json:"username"`
	PasswordHash     string    `json:"-"`
	LicenseExpiresAt time.Time `json:"licenseExpiresAt"`
	AuditFields
}

// LicenseValid reports whether the tenant license is still active at t.
func (u *User) LicenseValid(t time.Time) bool {
	return !u.LicenseExpiresAt.Before(t)
}
