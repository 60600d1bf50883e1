//nolint:revive // Package name 'utils' is intentional and commonly used in Go projects
package utils

import (
	"github.com/google/uuid"
)

// GenerateRandomID creates a random UUID v4 string, used for report IDs
func GenerateRandomID() string {
	return uuid.New().String()
}
