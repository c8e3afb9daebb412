package token

import "github.com/google/uuid"

// Manager issues and verifies access tokens.
type Manager interface {
	Issue(userID uuid.UUID) (string, error)
	// Verify returns the user ID embedded in a valid token.
	Verify(token string) (uuid.UUID, error)
}
