package filters

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PathFilter matches slash separated paths relative to the repository root.
type PathFilter func(path string) bool

// ParsePathFilter parses a doublestar glob. Clauses can be combined with '|' (or)
// and '&' (and) and negated with a leading '!'. Empty clauses are ignored, and a
// rule with no clauses matches nothing.
func ParsePathFilter(rule string) (PathFilter, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return matchNothing, nil

	case strings.Contains(rule, "|"):
		clauses, err := ParsePathFilterList(splitClauses(rule, "|"))
		if err != nil {
			return nil, err
		}

		return func(path string) bool {
			result := false
			for _, f := range clauses {
				result = result || f(path)
			}
			return result
		}, nil

	case strings.Contains(rule, "&"):
		clauses, err := ParsePathFilterList(splitClauses(rule, "&"))
		if err != nil {
			return nil, err
		}
		if len(clauses) == 0 {
			return matchNothing, nil
		}

		return func(path string) bool {
			result := true
			for _, f := range clauses {
				result = result && f(path)
			}
			return result
		}, nil

	case strings.HasPrefix(rule, "!"):
		f, err := ParsePathFilter(rule[1:])
		if err != nil {
			return nil, err
		}

		return func(path string) bool {
			return !f(path)
		}, nil

	default:
		if !doublestar.ValidatePattern(rule) {
			return nil, fmt.Errorf("invalid path glob: %v", rule)
		}

		return func(path string) bool {
			m, err := doublestar.Match(rule, path)
			return err == nil && m
		}, nil
	}
}

func matchNothing(string) bool {
	return false
}

func splitClauses(rule string, sep string) []string {
	var result []string
	for _, clause := range strings.Split(rule, sep) {
		if strings.TrimSpace(clause) != "" {
			result = append(result, clause)
		}
	}
	return result
}

func ParsePathFilterList(rules []string) ([]PathFilter, error) {
	result := make([]PathFilter, 0, len(rules))

	for _, rule := range rules {
		f, err := ParsePathFilter(rule)
		if err != nil {
			return nil, err
		}

		result = append(result, f)
	}

	return result, nil
}

// AnyPath matches when any of the filters does. No filters match nothing.
func AnyPath(fs []PathFilter) PathFilter {
	return func(path string) bool {
		for _, f := range fs {
			if f(path) {
				return true
			}
		}
		return false
	}
}
