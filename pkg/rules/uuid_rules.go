package rules

import (
	"github.com/google/uuid"
)

// UUID holds for strings in the canonical 36-character hyphenated form.
func UUID() Rule[string] {
	return func(s string) bool {
		_, ok := parseCanonicalUUID(s)
		return ok
	}
}

// UUIDVersion holds for canonical UUID strings of the given version.
func UUIDVersion(version uuid.Version) Rule[string] {
	return func(s string) bool {
		id, ok := parseCanonicalUUID(s)
		return ok && id.Version() == version
	}
}

// NotNilUUID holds for any UUID other than uuid.Nil.
func NotNilUUID() Rule[uuid.UUID] {
	return func(id uuid.UUID) bool {
		return id != uuid.Nil
	}
}

// parseCanonicalUUID rejects the braced, urn and compact forms uuid.Parse
// also accepts. Length and hyphen positions are checked before parsing.
func parseCanonicalUUID(s string) (uuid.UUID, bool) {
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
