package sitecontent

import (
	"math"
	"strconv"
	"strings"
)

const (
	bytesPerKB = 1 << 10
	bytesPerMB = 1 << 20
	bytesPerGB = 1 << 30
)

// ParseSize converts a formatted size string ("700 KB", "1.2 MB") to bytes.
// Suffix matching is case-sensitive on exactly B, KB, MB and GB; anything
// else, or a non-numeric prefix, yields zero.
func ParseSize(size string) int64 {
	s := strings.TrimSpace(size)

	multiplier := float64(1)
	switch {
	case strings.HasSuffix(s, "GB"):
		multiplier = bytesPerGB
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "MB"):
		multiplier = bytesPerMB
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "KB"):
		multiplier = bytesPerKB
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "B"):
		s = s[:len(s)-1]
	default:
		return 0
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || value <= 0 {
		return 0
	}
	return int64(math.Round(value * multiplier))
}

// FormatSize renders a byte count using the largest unit that keeps the
// displayed value >= 1, rounded to one decimal place ("700 KB", "1.2 MB").
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}

	value := float64(bytes)
	unit := "B"
	switch {
	case bytes >= bytesPerGB:
		value /= bytesPerGB
		unit = "GB"
	case bytes >= bytesPerMB:
		value /= bytesPerMB
		unit = "MB"
	case bytes >= bytesPerKB:
		value /= bytesPerKB
		unit = "KB"
	}

	rounded := math.Round(value*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + unit
}
