package profile

import (
	"os"
	"path/filepath"
)

// tempDir returns the platform temp directory.
func tempDir() string {
	return filepath.Clean(os.TempDir())
}

// cacheDir returns the user cache directory, falling back to the temp
// directory when the platform reports none.
func cacheDir() string {
	if d, err := os.UserCacheDir(); err == nil {
		return d
	}
	return tempDir()
}

// Sample returns a starter profile covering common leftover locations.
// It is intentionally conservative; users are expected to edit the written
// file to match the applications installed on their machine.
func Sample() Profile {
	tmp := tempDir()
	return Profile{
		Name: "starter",
		Entries: []Entry{
			{Kind: KindPattern, Value: filepath.Join(tmp, "*.tmp")},
			{Kind: KindPattern, Value: filepath.Join(tmp, "*.log")},
			// Crash dumps pile up fast; keep the newest one around for
			// whoever is still debugging.
			{Kind: KindPattern, Value: filepath.Join(tmp, "*.dmp"), Exception: ExceptionMostRecent},
			{Kind: KindDirectory, Value: filepath.Join(cacheDir(), "sweep", "scratch")},
		},
	}
}
