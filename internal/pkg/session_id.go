package pkg

import "github.com/google/uuid"

// GenerateNewSessionID - returns a random session id.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// IsValidSessionID - reports whether id looks like one GenerateNewSessionID made.
func IsValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
