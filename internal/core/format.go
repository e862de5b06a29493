package core

import "fmt"

// FormatSize returns a human-readable size string for the given byte count.
// Uses 1024-based units, one decimal place above KB.
// Examples: "512 B", "1.5 KB", "2.0 GB"
func FormatSize(size int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
		tb = gb * 1024
	)
	switch {
	case size >= tb:
		return fmt.Sprintf("%.1f TB", float64(size)/float64(tb))
	case size >= gb:
		return fmt.Sprintf("%.1f GB", float64(size)/float64(gb))
	case size >= mb:
		return fmt.Sprintf("%.1f MB", float64(size)/float64(mb))
	case size >= kb:
		return fmt.Sprintf("%.1f KB", float64(size)/float64(kb))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
