package fs

import (
	iofs "io/fs"
)

type FileSystem interface {
	Stat(path string) (iofs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]iofs.DirEntry, error)
	FileExists(path string) bool
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	MkdirAll(path string, perm iofs.FileMode) error
	// CopyFile replaces dst with the bytes of src, keeping the permission
	// bits and modification time of src.
	CopyFile(src, dst string) error
}
