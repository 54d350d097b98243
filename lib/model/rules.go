package model

type SourceLineRule int

const (
	// SourceLineNever never accepts a line as source.
	SourceLineNever SourceLineRule = iota
	// SourceLineSemicolon accepts lines with a ';' after the first character.
	SourceLineSemicolon
	// SourceLineNonEmpty accepts any non-empty line.
	SourceLineNonEmpty
)

func (r SourceLineRule) String() string {
	switch r {
	case SourceLineNever:
		return "never"
	case SourceLineSemicolon:
		return "semicolon"
	case SourceLineNonEmpty:
		return "non-empty"
	default:
		return "unknown"
	}
}

// Rules describe how lines of one kind of file are classified.
type Rules struct {
	CommentPrefixes []string
	SourceLine      SourceLineRule
}

var cFamilyRules = &Rules{
	CommentPrefixes: []string{"//", "/*"},
	SourceLine:      SourceLineSemicolon,
}

var pythonRules = &Rules{
	CommentPrefixes: []string{"#"},
	SourceLine:      SourceLineNonEmpty,
}

var asmRules = &Rules{
	CommentPrefixes: []string{";"},
	SourceLine:      SourceLineNever,
}

var unknownRules = &Rules{
	SourceLine: SourceLineNever,
}

var rulesByExtension = map[string]*Rules{
	".c":    cFamilyRules,
	".cpp":  cFamilyRules,
	".cxx":  cFamilyRules,
	".h":    cFamilyRules,
	".m":    cFamilyRules,
	".java": cFamilyRules,
	".rs":   cFamilyRules,
	".py":   pythonRules,
	".asm":  asmRules,
}

// RulesFor returns the rules for an extension (with the leading dot). Unknown
// extensions have no comment prefixes and never count as source.
func RulesFor(ext string) *Rules {
	if r, ok := rulesByExtension[ext]; ok {
		return r
	}

	return unknownRules
}

func KnownExtension(ext string) bool {
	_, ok := rulesByExtension[ext]
	return ok
}
