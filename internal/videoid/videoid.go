// Package videoid extracts and validates YouTube video identifiers.
package videoid

import (
	"errors"
	"fmt"
	"strings"
)

// MaxLen bounds accepted identifier length. Canonical YouTube IDs are 11
// characters, but the cap is generous so future ID formats keep working.
const MaxLen = 64

var ErrInvalid = errors.New("invalid video URL or ID")

// Extract pulls a video ID out of a raw URL or bare identifier. Supported
// forms: watch?v=, youtu.be/, shorts/, embed/, and a bare ID.
func Extract(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalid
	}

	candidates := []string{}
	if _, after, ok := strings.Cut(raw, "v="); ok {
		candidates = append(candidates, cutAny(after, "&#?"))
	}
	for _, marker := range []string{"youtu.be/", "shorts/", "embed/"} {
		if _, after, ok := strings.Cut(raw, marker); ok {
			candidates = append(candidates, cutAny(after, "?&#/"))
		}
	}
	candidates = append(candidates, raw)

	for _, c := range candidates {
		if id, err := Sanitize(c); err == nil {
			return id, nil
		}
	}
	return "", ErrInvalid
}

// Sanitize validates that id is safe to use as a path component: letters,
// digits, '-' and '_' only, non-empty, bounded length.
func Sanitize(id string) (string, error) {
	if id == "" || len(id) > MaxLen {
		return "", fmt.Errorf("%w: %q", ErrInvalid, id)
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalid, id)
		}
	}
	return id, nil
}

// cutAny returns s truncated at the first occurrence of any rune in cutset.
func cutAny(s, cutset string) string {
	if i := strings.IndexAny(s, cutset); i >= 0 {
		return s[:i]
	}
	return s
}
