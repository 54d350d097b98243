package scan

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"

	"github.com/msimms/gitstats/lib/annotate"
	"github.com/msimms/gitstats/lib/consoles"
	"github.com/msimms/gitstats/lib/filters"
	"github.com/msimms/gitstats/lib/model"
	"github.com/msimms/gitstats/lib/tally"
	"github.com/msimms/gitstats/lib/utils"
)

// Scanner walks a repository, annotates every eligible file and counts the
// accepted lines per author.
type Scanner struct {
	console   consoles.Console
	annotator annotate.Annotator
	progress  io.Writer
	plural    *pluralize.Client
}

func NewScanner(console consoles.Console, annotator annotate.Annotator) *Scanner {
	return &Scanner{
		console:   console,
		annotator: annotator,
		progress:  os.Stderr,
		plural:    pluralize.NewClient(),
	}
}

type fileWork struct {
	path         string
	relativePath string
	file         *model.FileContext
}

func (s *Scanner) Scan(ctx context.Context, repoDir string, opts *Options, result *tally.Tally) (*Stats, error) {
	stats := &Stats{}

	s.console.Printf("Finding out which files to process...\n")

	toProcess, err := s.listToProcess(repoDir, opts, stats)
	if err != nil {
		return stats, err
	}

	s.describeRules(opts.Extensions)

	s.console.Printf("Annotating %v...\n", s.count(len(toProcess), "file"))

	bar := utils.NewProgressBar(len(toProcess), s.progress, opts.ShowProgress)
	for _, w := range toProcess {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		bar.Describe(utils.TruncateFilename(w.relativePath))

		err = s.processFile(ctx, repoDir, w, opts, result, stats)
		if err != nil {
			return stats, err
		}

		_ = bar.Add(1)
	}
	_ = bar.Finish()

	s.console.Printf("Counted %v from %v by %v.\n",
		s.count(stats.LinesCounted, "line"), s.count(stats.FilesAnnotated, "file"), s.count(result.Len(), "author"))
	if stats.BadTimestamps > 0 {
		s.console.Printf("Skipped %v with invalid timestamps.\n", s.count(stats.BadTimestamps, "line"))
	}

	return stats, nil
}

func (s *Scanner) processFile(ctx context.Context, repoDir string, w *fileWork, opts *Options, result *tally.Tally, stats *Stats) error {
	s.console.PushPrefix("%v: ", w.relativePath)
	defer s.console.PopPrefix()

	output, err := s.annotator.Annotate(ctx, repoDir, w.path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		stats.FilesFailed++
		s.console.Verbosef("%v\n", err)
	} else {
		stats.FilesAnnotated++
	}

	err = ProcessOutput(output, w.file, opts, result, stats, s.console)
	if err != nil {
		return errors.Wrapf(err, "error processing blame of %v", w.relativePath)
	}

	return nil
}

func (s *Scanner) describeRules(extensions []string) {
	for _, ext := range extensions {
		if !model.KnownExtension(ext) {
			s.console.Printf("No line rules for %v: comments are not detected and no line counts as source.\n", ext)
			continue
		}

		rules := model.RulesFor(ext)
		s.console.Verbosef("Rules for %v: comments %v, source lines %v\n",
			ext, strings.Join(rules.CommentPrefixes, " "), rules.SourceLine)
	}
}

func (s *Scanner) count(n int, noun string) string {
	return humanize.Comma(int64(n)) + " " + s.plural.Pluralize(noun, n, false)
}

func (s *Scanner) listToProcess(repoDir string, opts *Options, stats *Stats) ([]*fileWork, error) {
	extensions := set.New[string](len(opts.Extensions))
	extensions.InsertSlice(opts.Extensions)

	excludes, err := filters.ParsePathFilterList(opts.Exclude)
	if err != nil {
		return nil, err
	}
	excluded := filters.AnyPath(excludes)

	var gitIgnored func(path string) bool
	if opts.RespectGitignore {
		gitIgnored, err = utils.FindGitIgnore(repoDir)
		if err != nil {
			return nil, err
		}
	}

	var result []*fileWork

	err = filepath.WalkDir(repoDir, func(path string, entry fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return nil

		case path == repoDir:
			return nil

		case entry.IsDir() && entry.Name() == ".git":
			return filepath.SkipDir
		}

		rel, err := filepath.Rel(repoDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if gitIgnored != nil && gitIgnored(rel+"/") {
				s.console.Verbosef("%v/: ignored by .gitignore\n", rel)
				return filepath.SkipDir
			}
			return nil
		}

		stats.FilesSeen++

		ext := model.Extension(path)
		if !extensions.Contains(ext) {
			return nil
		}

		if excluded(rel) {
			s.console.Verbosef("%v: excluded\n", rel)
			return nil
		}

		if gitIgnored != nil && gitIgnored(rel) {
			s.console.Verbosef("%v: ignored by .gitignore\n", rel)
			return nil
		}

		result = append(result, &fileWork{
			path:         path,
			relativePath: rel,
			file:         model.NewFileContext(ext),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].relativePath < result[j].relativePath
	})

	stats.FilesEligible = len(result)

	return result, nil
}
