package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// TrimmedString treats a nil and a blank optional string the same way.
func TrimmedString(ptr *string) string {
	return strings.TrimSpace(Coalesce(ptr, ""))
}
