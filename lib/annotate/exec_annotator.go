package annotate

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/abiosoft/lineprefix"
	"github.com/pkg/errors"
)

// ExecAnnotator runs `git blame <file>` and buffers its whole output.
type ExecAnnotator struct {
	gitBin  string
	verbose bool
	stderr  io.Writer
}

func NewExecAnnotator(gitBin string, verbose bool) *ExecAnnotator {
	if gitBin == "" {
		gitBin = "git"
	}

	return &ExecAnnotator{
		gitBin:  gitBin,
		verbose: verbose,
		stderr:  os.Stderr,
	}
}

// Annotate returns whatever git wrote to stdout. When git fails (not a
// repository, untracked file, git missing) the output is usually empty and the
// error is returned alongside it.
func (a *ExecAnnotator) Annotate(ctx context.Context, repoDir string, path string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, a.gitBin, "blame", path)
	cmd.Dir = repoDir

	if a.verbose {
		name, err := filepath.Rel(repoDir, path)
		if err != nil {
			name = path
		}
		prefix := lineprefix.PrefixFunc(func() string {
			return name + ": "
		})
		cmd.Stderr = lineprefix.New(lineprefix.Writer(a.stderr), prefix)
	}

	out, err := cmd.Output()
	if err != nil {
		return out, errors.Wrapf(err, "error running %v blame %v", a.gitBin, path)
	}

	return out, nil
}
