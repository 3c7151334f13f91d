// Package auth holds the authorization decisions made when credentials are
// created. Handlers never compare usernames against privilege rules directly;
// they ask this package once, at registration, and persist the answer.
package auth

import (
	"strings"

	"kickrate/backend/internal/config"
	"kickrate/backend/internal/models"
)

// RoleFor decides the role a new user receives at registration.
// The reserved admin name is matched case-insensitively.
func RoleFor(username string) string {
	if strings.EqualFold(username, config.AppConfig.AdminUsername) {
		return models.RoleAdmin
	}
	return models.RoleUser
}
