package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string, used to correlate
// log lines belonging to one request
func GenerateID() string {
	return uuid.New().String()
}
