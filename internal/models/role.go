package models

// Role values assigned to users at registration.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
