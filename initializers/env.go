package initializers

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads values from .env files into the process environment.
// Missing files are skipped and variables already set win.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	var existing []string
	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			existing = append(existing, name)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	return godotenv.Load(existing...)
}
