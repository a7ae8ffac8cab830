package rules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

var alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// NotBlank holds for strings that are not empty after trimming whitespace.
func NotBlank() Rule[string] {
	return func(s string) bool {
		return strings.TrimSpace(s) != ""
	}
}

// MinLen holds for strings with at least min characters (runes, not bytes).
func MinLen(min int) Rule[string] {
	return func(s string) bool {
		return utf8.RuneCountInString(s) >= min
	}
}

// MaxLen holds for strings with at most max characters.
func MaxLen(max int) Rule[string] {
	return func(s string) bool {
		return utf8.RuneCountInString(s) <= max
	}
}

// Len holds for strings with exactly n characters.
func Len(n int) Rule[string] {
	return func(s string) bool {
		return utf8.RuneCountInString(s) == n
	}
}

func Alphanumeric() Rule[string] {
	return func(s string) bool {
		return alphanumericRegex.MatchString(s)
	}
}

func NoWhitespace() Rule[string] {
	return func(s string) bool {
		return !strings.ContainsFunc(s, unicode.IsSpace)
	}
}

// Matches holds for strings matching pattern. Panics if pattern does not compile,
// like regexp.MustCompile, since patterns are expected to be static.
func Matches(pattern string) Rule[string] {
	re := regexp.MustCompile(pattern)
	return func(s string) bool {
		return re.MatchString(s)
	}
}

// EqualFold holds for strings equal to want under full Unicode case folding
// ("Straße" matches "STRASSE").
func EqualFold(want string) Rule[string] {
	folded := cases.Fold().String(want)
	return func(s string) bool {
		return cases.Fold().String(s) == folded
	}
}

// OneOfFold holds for strings that case-fold to one of allowed.
func OneOfFold(allowed ...string) Rule[string] {
	set := make(map[string]struct{}, len(allowed))
	fold := cases.Fold()
	for _, a := range allowed {
		set[fold.String(a)] = struct{}{}
	}
	return func(s string) bool {
		_, ok := set[cases.Fold().String(s)]
		return ok
	}
}
