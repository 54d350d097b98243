package classify

import (
	"strings"

	"github.com/msimms/gitstats/lib/model"
)

// Filters holds the enabled content filters. A line is accepted only when every
// enabled filter passes.
type Filters struct {
	IgnoreComments  bool
	IgnoreEmpty     bool
	OnlySourceLines bool
}

func DefaultFilters() Filters {
	return Filters{
		IgnoreComments:  true,
		IgnoreEmpty:     true,
		OnlySourceLines: true,
	}
}

func (f Filters) Accept(content string, file *model.FileContext) bool {
	text := strings.TrimSpace(content)

	if f.IgnoreEmpty && IsEmpty(text) {
		return false
	}
	if f.IgnoreComments && IsComment(text, file.Rules) {
		return false
	}
	if f.OnlySourceLines && !IsSourceLine(text, file.Rules) {
		return false
	}

	return true
}

func Accept(content string, ext string, comments bool, empties bool, sourceOnly bool) bool {
	f := Filters{
		IgnoreComments:  comments,
		IgnoreEmpty:     empties,
		OnlySourceLines: sourceOnly,
	}
	return f.Accept(content, model.NewFileContext(ext))
}

// The predicates below expect already trimmed text.

func IsEmpty(text string) bool {
	return len(text) == 0
}

func IsComment(text string, rules *model.Rules) bool {
	for _, prefix := range rules.CommentPrefixes {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}

func IsSourceLine(text string, rules *model.Rules) bool {
	switch rules.SourceLine {
	case model.SourceLineSemicolon:
		return strings.IndexByte(text, ';') > 0
	case model.SourceLineNonEmpty:
		return len(text) > 0
	default:
		return false
	}
}
