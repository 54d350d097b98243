package model

import (
	"path/filepath"
	"strings"
)

type FileContext struct {
	Extension string
	Rules     *Rules
}

func NewFileContext(ext string) *FileContext {
	return &FileContext{
		Extension: ext,
		Rules:     RulesFor(ext),
	}
}

func NewFileContextForPath(path string) *FileContext {
	return NewFileContext(Extension(path))
}

// Extension returns the extension of the file name, including the dot. Leading
// dots of the name are not an extension, so ".bashrc" has none.
func Extension(path string) string {
	name := strings.TrimLeft(filepath.Base(path), ".")
	return filepath.Ext(name)
}
