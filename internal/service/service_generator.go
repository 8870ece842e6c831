// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// generatorService is the default implementation of [GeneratorService].
type generatorService struct {
	generator     crypto.Generator
	defaultLength int
	logger        *logger.Logger
}

// NewGeneratorService constructs a [GeneratorService] with the configured
// fallback length.
func NewGeneratorService(generator crypto.Generator, defaultLength int, log *logger.Logger) GeneratorService {
	return &generatorService{
		generator:     generator,
		defaultLength: defaultLength,
		logger:        log,
	}
}

// Generate implements [GeneratorService].
func (g *generatorService) Generate(length int) (string, error) {
	if length < 1 {
		length = g.defaultLength
	}

	return g.generator.Generate(length)
}

// DefaultLength implements [GeneratorService].
func (g *generatorService) DefaultLength() int {
	return g.defaultLength
}
