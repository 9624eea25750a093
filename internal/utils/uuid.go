// Package utils holds small shared helpers with no domain logic.
package utils

import "github.com/google/uuid"

// RequestIDGenerator produces identifiers attached to every outbound
// request for backend-side correlation. V7 UUIDs are time-ordered, which
// keeps portal logs sortable; the generator falls back to a random UUID
// if V7 generation fails.
type RequestIDGenerator struct {
}

func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{}
}

func (g *RequestIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
