package model

import "github.com/google/uuid"

// NewID returns a fresh node id.
func NewID() string {
	return uuid.New().String()
}
