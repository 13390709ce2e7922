package onedrive

import "strings"

// reservedNameChars are the characters OneDrive rejects in item names.
const reservedNameChars = `\/:*?"<>|`

// SanitizeName replaces every character OneDrive disallows in folder names
// with a hyphen. It performs no truncation or Unicode normalization and is
// idempotent.
func SanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(reservedNameChars, r) {
			return '-'
		}
		return r
	}, name)
}
