package model

import "github.com/google/uuid"

// Principal is the request-scoped identity resolved from the session cookie.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}
