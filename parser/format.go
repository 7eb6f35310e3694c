package parser

import "fmt"

// FormatBytes formats a byte count in a human-readable form using binary
// units (KB = 1024 bytes).
//
//	FormatBytes(512)     -> "512 B"
//	FormatBytes(2048)    -> "2.0 KB"
//	FormatBytes(1536000) -> "1.5 MB"
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
