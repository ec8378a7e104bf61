package utils

import "github.com/google/uuid"

// RunIDGenerator produces unique identifiers for experiment invocations.
type RunIDGenerator struct {
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the system clock is unavailable.
func (g *RunIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
