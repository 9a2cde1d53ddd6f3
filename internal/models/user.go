package models

import "time"

// User represents a login row.
type User struct {
	UserID           string    `db:"user_id"`
	TenantID         string    `db:"tenant_id"`
	Name             string    `db:"name"`
	Username         string    `db:"username"`
	PasswordHash     string    `db:"password_hash"`
	LicenseExpiresAt time.Time `db:"license_expires_at"`
	AuditFields
}
