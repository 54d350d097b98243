package annotate

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"

	"github.com/msimms/gitstats/lib/utils"
)

// GoGitAnnotator blames files in-process with go-git and renders the result in
// the same text format `git blame` prints.
type GoGitAnnotator struct {
	repos map[string]*git.Repository
}

func NewGoGitAnnotator() *GoGitAnnotator {
	return &GoGitAnnotator{
		repos: map[string]*git.Repository{},
	}
}

func (a *GoGitAnnotator) open(repoDir string) (*git.Repository, error) {
	if r, ok := a.repos[repoDir]; ok {
		return r, nil
	}

	r, err := git.PlainOpenWithOptions(repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}

	a.repos[repoDir] = r
	return r, nil
}

func (a *GoGitAnnotator) Annotate(ctx context.Context, repoDir string, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gitRepo, err := a.open(repoDir)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening repository %v", repoDir)
	}

	wt, err := gitRepo.Worktree()
	if err != nil {
		return nil, errors.Wrapf(err, "error opening worktree of %v", repoDir)
	}

	root, err := utils.PathAbs(wt.Filesystem.Root())
	if err != nil {
		return nil, err
	}

	path, err = utils.PathAbs(path)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	head, err := gitRepo.Head()
	if err != nil {
		return nil, errors.Wrapf(err, "error resolving HEAD of %v", repoDir)
	}

	commit, err := gitRepo.CommitObject(head.Hash())
	if err != nil {
		return nil, err
	}

	result, err := git.Blame(commit, rel)
	if err != nil {
		return nil, errors.Wrapf(err, "error computing blame of %v", rel)
	}

	lines := make([]BlameLine, 0, len(result.Lines))
	for _, l := range result.Lines {
		lines = append(lines, BlameLine{
			Hash:       l.Hash.String(),
			AuthorName: l.AuthorName,
			Date:       l.Date,
			Text:       l.Text,
		})
	}

	return Render(lines), nil
}

// Render formats lines like `git blame` does:
//
//	<hash> (<author> <YYYY-MM-DD HH:MM:SS +zzzz> <line>) <text>
func Render(lines []BlameLine) []byte {
	authorWidth := 0
	for _, l := range lines {
		authorWidth = max(authorWidth, len(l.AuthorName))
	}
	numberWidth := len(fmt.Sprint(len(lines)))

	var buf bytes.Buffer
	for i, l := range lines {
		hash := l.Hash
		if len(hash) > 8 {
			hash = hash[:8]
		}

		fmt.Fprintf(&buf, "%v (%v%v %v %*d) %v\n",
			hash,
			l.AuthorName, strings.Repeat(" ", authorWidth-len(l.AuthorName)),
			l.Date.Format("2006-01-02 15:04:05 -0700"),
			numberWidth, i+1,
			l.Text)
	}
	return buf.Bytes()
}
