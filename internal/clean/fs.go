package clean

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lakshaymaurya-felt/sweep/internal/resolve"
)

// FS is the mutation surface the executor needs from the operating system.
// It stays narrow so tests can wrap it to simulate locked files.
type FS interface {
	Lstat(path string) (os.FileInfo, error)
	RemoveFile(path string) error
	RemoveDir(path string) error
}

type osFS struct{}

func (osFS) Lstat(path string) (os.FileInfo, error) { return os.Lstat(path) }
func (osFS) RemoveFile(path string) error           { return os.Remove(path) }
func (osFS) RemoveDir(path string) error            { return os.RemoveAll(path) }

// OSFilesystem returns the FS backed by the real operating system.
func OSFilesystem() FS { return osFS{} }

// TargetSize reports the bytes a target currently occupies, for plan
// previews. Missing targets report zero.
func TargetSize(t resolve.Target) int64 {
	info, err := os.Lstat(t.Path)
	if err != nil {
		return 0
	}
	if info.IsDir() {
		return dirSize(t.Path)
	}
	return info.Size()
}

// dirSize sums regular file sizes under root. Measured before removal so
// the summary can report reclaimed space; unreadable subtrees count as
// zero rather than failing the deletion.
func dirSize(root string) int64 {
	var total int64
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				total += info.Size()
			}
		}
		return nil
	})
	return total
}
