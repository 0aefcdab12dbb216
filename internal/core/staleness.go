package core

import "io/fs"

// IsStale reports whether dst must be regenerated from src. A nil dst means
// the destination does not exist.
func IsStale(src, dst fs.FileInfo) bool {
	if dst == nil || !dst.Mode().IsRegular() {
		return true
	}
	return src.ModTime().After(dst.ModTime())
}
