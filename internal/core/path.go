package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

func ValidateFileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("file name cannot be empty")
	}

	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return fmt.Errorf("file name %q must be relative", name)
	}

	clean := filepath.ToSlash(filepath.Clean(name))
	if clean == "." {
		return fmt.Errorf("file name %q does not name a file", name)
	}

	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("file name %q cannot contain parent directory references", name)
	}

	return nil
}

func ResolveDir(candidates ...string) string {
	for _, dir := range candidates {
		if dir != "" {
			return dir
		}
	}
	return ""
}
