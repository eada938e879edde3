// Package seeders populates a fresh database with a working data set:
// one admin account and a small demo catalogue.
package seeders

import (
	"fmt"

	"gorm.io/gorm"
)

type seeder struct {
	name string
	fn   func(db *gorm.DB) error
}

var registry []seeder

func register(name string, fn func(db *gorm.DB) error) {
	registry = append(registry, seeder{name: name, fn: fn})
}

// RunAll executes every registered seeder in registration order.
// Seeders are idempotent, running them twice does not duplicate rows.
func RunAll(db *gorm.DB) error {
	for _, s := range registry {
		fmt.Printf("  ▶ Seeding: %s\n", s.name)
		if err := s.fn(db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.name, err)
		}
	}
	fmt.Printf("✅ Seeding complete (%d seeders ran)\n", len(registry))
	return nil
}
