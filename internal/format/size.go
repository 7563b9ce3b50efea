package format

import "fmt"

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// Size renders a byte count in binary units: "512B", "1.5K", "230.1M", "1.25G".
func Size(bytes int64) string {
	switch {
	case bytes < kib:
		return fmt.Sprintf("%dB", bytes)
	case bytes < mib:
		return fmt.Sprintf("%.1fK", float64(bytes)/kib)
	case bytes < gib:
		return fmt.Sprintf("%.1fM", float64(bytes)/mib)
	default:
		return fmt.Sprintf("%.2fG", float64(bytes)/gib)
	}
}
