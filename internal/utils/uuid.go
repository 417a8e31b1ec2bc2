package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a V7 UUID so trace IDs sort by creation time in log
// output. If the randomness source fails it falls back to a V4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
