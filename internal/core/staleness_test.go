package core

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeInfo struct {
	name    string
	mode    fs.FileMode
	modTime time.Time
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() fs.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return f.modTime }
func (f fakeInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeInfo) Sys() any           { return nil }

func TestIsStale(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	src := fakeInfo{name: "a.txt", modTime: t1}

	tests := []struct {
		name string
		dst  fs.FileInfo
		want bool
	}{
		{name: "destination missing", dst: nil, want: true},
		{name: "destination is a directory", dst: fakeInfo{name: "a.txt", mode: fs.ModeDir | 0755, modTime: t2}, want: true},
		{name: "source newer", dst: fakeInfo{name: "a.txt", modTime: t1.Add(-time.Second)}, want: true},
		{name: "same mtime", dst: fakeInfo{name: "a.txt", modTime: t1}, want: false},
		{name: "destination newer", dst: fakeInfo{name: "a.txt", modTime: t2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStale(src, tt.dst))
		})
	}
}
