package filters

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

type AuthorFilter func(author string) bool

// ParseAuthorFilters compiles glob patterns for author names, compared case
// insensitively. No patterns accept every author.
func ParseAuthorFilters(patterns []string) (AuthorFilter, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid author glob: %v", p)
		}

		globs = append(globs, g)
	}

	if len(globs) == 0 {
		return func(string) bool {
			return true
		}, nil
	}

	return func(author string) bool {
		author = strings.ToLower(author)
		for _, g := range globs {
			if g.Match(author) {
				return true
			}
		}
		return false
	}, nil
}
