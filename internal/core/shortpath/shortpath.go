// Package shortpath compacts filesystem paths for prompts and notifications.
package shortpath

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the display width used when the caller has no preference.
const DefaultMaxLength = 40

const elision = "..."

// Shorten fits p into maxLength characters. The home directory prefix becomes
// "~"; if that is still too long, leading directories are replaced by
// "~/.../" keeping as many trailing segments as fit. When not even the last
// segment fits, the last maxLength characters are returned.
func Shorten(p string, maxLength int, home string) string {
	if maxLength <= 0 {
		return ""
	}

	display := p
	if home != "" && strings.HasPrefix(p, home) {
		display = "~" + strings.TrimPrefix(p, home)
	}
	if utf8.RuneCountInString(display) <= maxLength {
		return display
	}

	parts := strings.Split(display, string(filepath.Separator))
	result := ""
	for i := len(parts) - 1; i >= 0; i-- {
		candidate := filepath.Join(append([]string{"~", elision}, parts[i:]...)...)
		// Candidates only grow as segments are added from the right.
		if utf8.RuneCountInString(candidate) > maxLength {
			break
		}
		result = candidate
	}
	if result != "" {
		return result
	}

	runes := []rune(display)
	return string(runes[len(runes)-maxLength:])
}
