package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath is usable before AppConfig exists: the .env file that
// feeds AppConfig lives inside the runtime directory itself.
func GetRuntimePath() string {
	path := os.Getenv("LOOPSH_RUNTIME_PATH")
	if path == "" {
		path = ".loopsh"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
