package maec

import (
	"strings"

	"github.com/google/uuid"
)

// idSeparator divides the kind prefix from the UUID suffix. A kind
// containing the literal separator cannot be represented and is rejected
// by ValidID.
const idSeparator = "--"

// GenerateID mints a fresh identifier of the form "kind--uuid4".
func GenerateID(kind string) string {
	return kind + idSeparator + uuid.NewString()
}

// ValidID reports whether id has the form "kind--uuid": exactly one
// separator, a non-empty kind, and a suffix that parses as an RFC-4122
// UUID of any version. Malformed ids are rejected outright, never coerced.
func ValidID(id string) bool {
	kind, suffix, found := strings.Cut(id, idSeparator)
	if !found || kind == "" || suffix == "" {
		return false
	}
	// More than one separator means the split is not two segments.
	if strings.Contains(suffix, idSeparator) {
		return false
	}
	_, err := uuid.Parse(suffix)
	return err == nil
}

// KindOfID returns the kind prefix of a valid identifier. ok is false if
// the id fails ValidID.
func KindOfID(id string) (kind string, ok bool) {
	if !ValidID(id) {
		return "", false
	}
	kind, _, _ = strings.Cut(id, idSeparator)
	return kind, true
}

// RefMatchesKind reports whether id is a valid identifier whose kind
// prefix equals expected. This check is syntactic only; it does not prove
// that the referenced object exists anywhere.
func RefMatchesKind(id, expected string) bool {
	kind, ok := KindOfID(id)
	return ok && kind == expected
}
