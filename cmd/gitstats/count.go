package main

import (
	"context"
	"io"

	"github.com/alecthomas/kong"
	"github.com/go-git/go-git/v5"

	"github.com/msimms/gitstats/lib/annotate"
	"github.com/msimms/gitstats/lib/classify"
	"github.com/msimms/gitstats/lib/consoles"
	"github.com/msimms/gitstats/lib/filters"
	"github.com/msimms/gitstats/lib/model"
	"github.com/msimms/gitstats/lib/report"
	"github.com/msimms/gitstats/lib/scan"
	"github.com/msimms/gitstats/lib/tally"
	"github.com/msimms/gitstats/lib/utils"
)

type countCmd struct {
	Config kong.ConfigFlag `help:"Load options from a JSON file."`

	Repo      string `required:"" type:"existingdir" help:"Path of the local repo to examine. ex: --repo /src/my_repo/"`
	StartTime string `placeholder:"YYYY-MM-DD" help:"Filter out lines that were modified before this date."`
	EndTime   string `placeholder:"YYYY-MM-DD" help:"Filter out lines that were modified on or after this date."`

	IgnoreComments  bool   `default:"true" negatable:"" help:"Filter out lines that start with a comment."`
	IgnoreEmpty     bool   `default:"true" negatable:"" help:"Filter out lines that only contain whitespace."`
	OnlySourceLines bool   `default:"true" negatable:"" help:"Only consider lines that look like source code, such as those that contain a semicolon in C-based languages."`
	Extensions      string `default:".c,.cpp,.h,.m,.py,.rs" help:"Only consider files with these extensions. ex: --extensions .c,.cpp,.h"`

	Exclude           []string `short:"x" help:"Skip files matching these globs, relative to the repo root."`
	Author            []string `short:"a" help:"Only report authors matching these globs."`
	RespectGitignore  bool     `help:"Skip files matched by the repo .gitignore, even if they are committed."`
	Annotator         string   `default:"exec" enum:"exec,go-git" help:"How to compute blame: run git (exec) or use go-git in process (go-git)."`
	Git               string   `default:"git" help:"git executable used by the exec annotator."`
	Sort              string   `default:"first-seen" enum:"first-seen,name,lines" help:"Order of authors in the report."`
	LenientTimestamps bool     `help:"Skip lines with invalid timestamps instead of failing."`
	Progress          bool     `default:"true" negatable:"" help:"Show a progress bar."`
	Verbose           bool     `short:"v" help:"Show details about skipped files and lines."`
}

func (c *countCmd) Run(ctx context.Context, console consoles.Console, out io.Writer) error {
	window, err := model.ParseTimeWindow(c.StartTime, c.EndTime)
	if err != nil {
		return err
	}

	order, err := tally.ParseOrder(c.Sort)
	if err != nil {
		return err
	}

	authors, err := filters.ParseAuthorFilters(c.Author)
	if err != nil {
		return err
	}

	annotator, err := annotate.New(annotate.Options{Kind: c.Annotator, GitBin: c.Git}, c.Verbose)
	if err != nil {
		return err
	}

	repoDir, err := utils.PathAbs(c.Repo)
	if err != nil {
		return err
	}

	opts := &scan.Options{
		Extensions: scan.ParseExtensions(c.Extensions),
		Filters: classify.Filters{
			IgnoreComments:  c.IgnoreComments,
			IgnoreEmpty:     c.IgnoreEmpty,
			OnlySourceLines: c.OnlySourceLines,
		},
		Window:            window,
		Exclude:           c.Exclude,
		RespectGitignore:  c.RespectGitignore,
		LenientTimestamps: c.LenientTimestamps,
		ShowProgress:      c.Progress,
	}

	report.PrintHeader(out, repoDir, c.Extensions)

	if _, err := git.PlainOpenWithOptions(repoDir, &git.PlainOpenOptions{DetectDotGit: true}); err != nil {
		console.Printf("%v does not look like a git repository: %v\n", repoDir, err)
	}

	console.Verbosef("Extensions: %v\n", report.DescribeExtensions(opts.Extensions))
	console.Verbosef("Time window: %v\n", window)

	result := tally.New()

	_, err = scan.NewScanner(console, annotator).Scan(ctx, repoDir, opts, result)
	if err != nil {
		return err
	}

	report.PrintCounts(out, result.Filter(authors).Report(order))

	return nil
}
