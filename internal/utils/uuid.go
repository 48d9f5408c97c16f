package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered ids for devices, trace ids and server
// side change records.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUID v7. If the clock source fails it falls back to a
// random v4 so callers never see an empty id.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
