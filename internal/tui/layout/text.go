package layout

import (
	"regexp"
	"unicode/utf8"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// TruncateText truncates text to maxWidth runes, ending with the ellipsis.
func TruncateText(text string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}

	runes := []rune(text)
	if len(runes) <= maxWidth {
		return text
	}

	ellipsis := []rune(cfg.Ellipsis)
	if maxWidth <= len(ellipsis) {
		return string(ellipsis[:maxWidth])
	}
	return string(runes[:maxWidth-len(ellipsis)]) + cfg.Ellipsis
}

// TruncateIndented truncates text behind a fixed prefix such as tree
// indentation and an expand marker. The prefix is kept whole when it fits.
//
//	TruncateIndented("Development", 10, "  ▸ ", cfg) // "  ▸ Dev..."
func TruncateIndented(text string, maxWidth int, prefix string, cfg TextConfig) string {
	prefixLen := utf8.RuneCountInString(prefix)
	if prefixLen >= maxWidth {
		return TruncateText(prefix+text, maxWidth, cfg)
	}
	return prefix + TruncateText(text, maxWidth-prefixLen, cfg)
}

// TruncateANSIAware truncates styled text, preserving ANSI codes.
// The result will have a reset code appended to prevent style bleed.
func TruncateANSIAware(styledText string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}

	if VisibleLength(styledText) <= maxWidth {
		return styledText
	}

	targetVisibleLen := max(maxWidth-utf8.RuneCountInString(cfg.Ellipsis), 0)

	// Walk through preserving ANSI codes
	var result []byte
	var visibleCount int
	input := []byte(styledText)

	i := 0
	for i < len(input) && visibleCount < targetVisibleLen {
		if loc := ansiRegex.FindIndex(input[i:]); loc != nil && loc[0] == 0 {
			result = append(result, input[i:i+loc[1]]...)
			i += loc[1]
			continue
		}

		r, size := utf8.DecodeRune(input[i:])
		if r != utf8.RuneError {
			result = append(result, input[i:i+size]...)
			visibleCount++
		}
		i += size
	}

	result = append(result, cfg.Ellipsis...)
	result = append(result, "\x1b[0m"...)
	return string(result)
}
