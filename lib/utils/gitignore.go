package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	ignore "github.com/sabhiram/go-gitignore"
)

// FindGitIgnore compiles the .gitignore at the root of rootDir. The returned
// matcher expects slash separated paths relative to rootDir, with a trailing
// slash for directories. It returns nil when there is no .gitignore.
func FindGitIgnore(rootDir string) (func(path string) bool, error) {
	path := filepath.Join(rootDir, ".gitignore")

	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %v", path)
	}

	return gi.MatchesPath, nil
}
