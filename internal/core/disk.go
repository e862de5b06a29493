package core

import (
	"github.com/shirou/gopsutil/v4/disk"
)

// VolumeSpace holds free/total bytes for the volume containing a path.
type VolumeSpace struct {
	Path  string
	Free  uint64
	Total uint64
}

// FreeSpace reports free and total space on the volume that contains path.
// The path must exist; pass a parent directory for targets that may already
// have been removed.
func FreeSpace(path string) (VolumeSpace, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return VolumeSpace{}, err
	}
	return VolumeSpace{
		Path:  usage.Path,
		Free:  usage.Free,
		Total: usage.Total,
	}, nil
}
