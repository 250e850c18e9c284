// Package models defines server-side data models persisted in the database.
package models

import (
	"time"

	"github.com/akarpovs/waygate/internal/common"
)

type User struct {
	ID           string
	Username     string
	PasswordHash []byte
	Salt         []byte
	Role         common.Role
	CreatedAt    time.Time
}
