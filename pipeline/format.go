package pipeline

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// TruncateName shortens a name for display, keeping the end which is more informative.
func TruncateName(name string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return name[:min(len(name), maxLen)]
	}
	if len(name) <= maxLen {
		return name
	}
	return "..." + name[len(name)-maxLen+3:]
}

// FormatStats formats stats as a one-line summary.
func FormatStats(s Stats) string {
	return fmt.Sprintf("%d containers, %d documents: %d cleaned, %d empty, %d failed, %d removed, %d duplicates",
		s.Containers, s.Documents, s.Cleaned, s.Empty, s.Failed, s.Removed, s.Duplicates)
}
