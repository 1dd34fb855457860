package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// DedupeIDs returns the trimmed ids without blanks or repeats, keeping the
// first occurrence of each.
func DedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// DiffIDs returns the ids of a that are not in b, in the order of a.
func DiffIDs(a, b []string) []string {
	exclude := make(map[string]struct{}, len(b))
	for _, id := range b {
		exclude[id] = struct{}{}
	}

	out := make([]string, 0, len(a))
	for _, id := range a {
		if _, ok := exclude[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}

// ContainsID reports whether ids contains id.
func ContainsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}

	return false
}

// RemoveID returns a copy of ids without id.
func RemoveID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}

	return out
}
