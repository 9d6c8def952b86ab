package sitecontent

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Slugify derives a URL-safe identifier from a human-readable name:
// lowercase, underscores mapped to hyphens, everything outside [a-z0-9 -]
// stripped, whitespace runs collapsed to single hyphens, trailing hyphens
// trimmed.
func Slugify(input string) string {
	lower := strings.ToLower(input)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == '_':
			b.WriteRune('-')
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	slug := strings.TrimSpace(b.String())
	slug = strings.Join(strings.Fields(slug), "-")
	return strings.TrimRight(slug, "-")
}

// nameExistsFunc reports whether a row of some kind already uses the given
// name. Each call is a separate store read.
type nameExistsFunc func(ctx context.Context, name string) (bool, error)

// resolveUniqueName returns a name/slug pair that does not collide with any
// existing row of the same kind. Starting from the desired name it probes
// "name", "name(1)", "name(2)", ... until an unused candidate is found; the
// slug gets a "-n" suffix appended to the slugified original name for the
// same index.
//
// The loop always terminates: each failed probe strictly increases the index
// and no two indices produce the same candidate. Concurrent callers can still
// observe the same free index and race to the write; the store's uniqueness
// constraint is the final authority and callers retry the resolution once on
// ErrDuplicateName.
func resolveUniqueName(ctx context.Context, exists nameExistsFunc, desired string) (name, slug string, err error) {
	base := Slugify(desired)
	name = desired
	slug = base

	for index := 0; ; index++ {
		if index > 0 {
			name = fmt.Sprintf("%s(%d)", desired, index)
			slug = fmt.Sprintf("%s-%d", base, index)
		}
		taken, err := exists(ctx, name)
		if err != nil {
			return "", "", err
		}
		if !taken {
			return name, slug, nil
		}
	}
}
