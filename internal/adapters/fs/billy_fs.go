package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// BillyFileSystem runs sweeps against any go-billy filesystem. Paths are
// slash separated and relative to the billy root.
type BillyFileSystem struct {
	fs billy.Filesystem
}

func NewBillyFileSystem(fs billy.Filesystem) *BillyFileSystem {
	return &BillyFileSystem{fs: fs}
}

func NewMemoryFileSystem() *BillyFileSystem {
	return NewBillyFileSystem(memfs.New())
}

func (b *BillyFileSystem) Stat(name string) (iofs.FileInfo, error) {
	return b.fs.Stat(name)
}

func (b *BillyFileSystem) ReadFile(name string) ([]byte, error) {
	return util.ReadFile(b.fs, name)
}

func (b *BillyFileSystem) ReadDir(name string) ([]iofs.DirEntry, error) {
	infos, err := b.fs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	entries := make([]iofs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, iofs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

func (b *BillyFileSystem) FileExists(name string) bool {
	_, err := b.fs.Stat(name)
	return err == nil
}

func (b *BillyFileSystem) WriteFile(name string, data []byte, perm iofs.FileMode) error {
	if err := b.fs.MkdirAll(path.Dir(name), 0755); err != nil {
		return err
	}
	return util.WriteFile(b.fs, name, data, perm)
}

func (b *BillyFileSystem) MkdirAll(name string, perm iofs.FileMode) error {
	return b.fs.MkdirAll(name, perm)
}

func (b *BillyFileSystem) CopyFile(src, dst string) error {
	srcFile, err := b.fs.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := b.fs.Stat(src)
	if err != nil {
		return err
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	dir := path.Dir(dst)
	if err := b.fs.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := b.fs.TempFile(dir, ".sweep-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, srcFile); err != nil {
		_ = tmp.Close()
		_ = b.fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = b.fs.Remove(tmpName)
		return err
	}

	if err := b.fs.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		_ = b.fs.Remove(tmpName)
		return err
	}
	if err := b.fs.Rename(tmpName, dst); err != nil {
		return err
	}

	change, ok := b.fs.(billy.Change)
	if !ok {
		return nil
	}
	if err := change.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}
	return change.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime())
}
