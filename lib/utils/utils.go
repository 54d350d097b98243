package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aquilax/truncate"
)

const maxDescriptionLength = 40

func TruncateFilename(name string) string {
	return truncate.Truncate(name, maxDescriptionLength, "...", truncate.PositionMiddle)
}

// PathAbs joins the path elements and resolves them to an absolute path without
// symlinks. A leading "~/" is expanded to the home dir.
func PathAbs(path ...string) (string, error) {
	result := filepath.Join(path...)

	if strings.HasPrefix(filepath.ToSlash(result), "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		result = filepath.Join(home, result[2:])
	}

	result, err := filepath.Abs(result)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(result)
}
