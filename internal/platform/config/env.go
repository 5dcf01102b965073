// Package config decodes env-tagged settings structs.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Load fills target from the process environment.
func Load(target any) error {
	return LoadFrom(target, nil)
}

// LoadFrom fills target from environ. A nil environ reads the process
// environment. Empty values fall back to envDefault.
func LoadFrom(target any, environ map[string]string) error {
	if err := env.ParseWithOptions(target, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}
