package scan

import (
	"strings"

	"github.com/msimms/gitstats/lib/classify"
	"github.com/msimms/gitstats/lib/model"
)

const DefaultExtensions = ".c,.cpp,.h,.m,.py,.rs"

type Options struct {
	// Extensions is the allow-list of file extensions, dot included.
	Extensions []string
	Filters    classify.Filters
	Window     model.TimeWindow

	// Exclude holds path globs, relative to the repository root, of files that
	// are never annotated.
	Exclude []string
	// RespectGitignore skips files matched by the root .gitignore. Committed
	// files can still match it, so it is off unless asked for.
	RespectGitignore bool
	// LenientTimestamps skips lines with invalid timestamps instead of failing.
	LenientTimestamps bool
	ShowProgress      bool
}

func DefaultOptions() *Options {
	return &Options{
		Extensions: ParseExtensions(DefaultExtensions),
		Filters:    classify.DefaultFilters(),
		Window:     model.DefaultTimeWindow(),
	}
}

// ParseExtensions splits a comma separated extension list.
func ParseExtensions(list string) []string {
	var result []string
	for _, e := range strings.Split(list, ",") {
		e = strings.TrimSpace(e)
		if e != "" {
			result = append(result, e)
		}
	}
	return result
}
