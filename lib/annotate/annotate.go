package annotate

import (
	"bytes"
	"context"
	"fmt"
)

// Annotator produces `git blame` style text for one file of a repository.
type Annotator interface {
	Annotate(ctx context.Context, repoDir string, path string) ([]byte, error)
}

const (
	ExecAnnotatorName  = "exec"
	GoGitAnnotatorName = "go-git"
)

// SplitLines splits annotation output on '\n', the way the output is consumed
// line by line.
func SplitLines(output []byte) [][]byte {
	if len(output) == 0 {
		return nil
	}

	return bytes.Split(output, []byte("\n"))
}

type Options struct {
	Kind   string
	GitBin string
}

func New(opts Options, verbose bool) (Annotator, error) {
	switch opts.Kind {
	case "", ExecAnnotatorName:
		return NewExecAnnotator(opts.GitBin, verbose), nil
	case GoGitAnnotatorName:
		return NewGoGitAnnotator(), nil
	default:
		return nil, fmt.Errorf("unknown annotator: %v", opts.Kind)
	}
}
