package validation

import (
	"regexp"
	"strings"
)

var (
	idSeparators = regexp.MustCompile(`[\s\-]`)
	wordStarts   = regexp.MustCompile(`\b\w`)
)

// FormatCode normalizes a program or college code: trimmed, uppercase.
func FormatCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// FormatName converts a name to title case. Word starts follow regex
// \b semantics, so hyphenated parts get capitalized too.
func FormatName(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	return wordStarts.ReplaceAllStringFunc(lowered, strings.ToUpper)
}

// FormatIDNumber strips spaces and hyphens and, when exactly 8 digits
// remain, reinserts the hyphen after the fourth digit (XXXX-XXXX).
// Other lengths come back stripped but otherwise untouched;
// ValidateIDNumber rejects those before formatting in the aggregate
// path, so the fallback only matters for standalone callers.
func FormatIDNumber(id string) string {
	cleaned := idSeparators.ReplaceAllString(id, "")
	if len(cleaned) == 8 {
		return cleaned[:4] + "-" + cleaned[4:]
	}
	return cleaned
}
