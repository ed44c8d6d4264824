package tool

import "github.com/google/uuid"

// GenerateUUIDV7 returns a time-ordered id suitable for primary keys.
func GenerateUUIDV7() string {
	return uuid.Must(uuid.NewV7()).String()
}
