package usecase

import (
	"errors"
	iofs "io/fs"

	"github.com/3-lines-studio/sweep/internal/core"
)

type StalenessChecker struct {
	fs FileSystem
}

func NewStalenessChecker(fs FileSystem) *StalenessChecker {
	return &StalenessChecker{fs: fs}
}

// IsNewer reports whether srcPath must be copied or rendered to dstPath.
// A missing source is an error, a missing destination is always stale.
func (c *StalenessChecker) IsNewer(srcPath, dstPath string) (bool, error) {
	srcInfo, err := c.fs.Stat(srcPath)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, &core.MissingSourceError{Path: srcPath}
		}
		return false, &core.FileSystemError{Op: "stat", Path: srcPath, Err: err}
	}

	dstInfo, err := c.fs.Stat(dstPath)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return true, nil
		}
		return false, &core.FileSystemError{Op: "stat", Path: dstPath, Err: err}
	}

	return core.IsStale(srcInfo, dstInfo), nil
}
