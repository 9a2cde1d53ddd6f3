package dto

import "time"

// LoginRequest authenticates a user.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token            string    `json:"token"`
	UserID           string    `json:"userID"`
	TenantID         string    `json:"tenantID"`
	LicenseExpiresAt time.Time `json:"licenseExpiresAt"`
}

// CreateUserRequest registers a user under a tenant.
type CreateUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Username    string `json:"username" binding:"required,min=3"`
	Password    string `json:"password" binding:"required,min=8"`
	TenantID    string `json:"tenantID" binding:"required"`
	LicenseDays int    `json:"licenseDays" binding:"omitempty,min=1"`
}
