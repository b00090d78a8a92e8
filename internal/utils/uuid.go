// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered (v7) UUID strings, used as request
// trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7, falling back to a random v4 when the v7
// clock sequence cannot be produced.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
