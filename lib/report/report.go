package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hhatto/gocloc"
	"github.com/samber/lo"

	"github.com/msimms/gitstats/lib/model"
)

var rule = strings.Repeat("-", 80)

func PrintHeader(out io.Writer, repoDir string, extensions string) {
	fmt.Fprintf(out, "Examining the following repository: %v\n", repoDir)
	fmt.Fprintf(out, "Counting lines of code in files with the following extensions: %v\n", extensions)
	fmt.Fprintln(out, rule)
}

// PrintCounts writes one "author:\tlines" line per author, a rule and the total.
func PrintCounts(out io.Writer, counts []model.AuthorCount) {
	for _, c := range counts {
		fmt.Fprintf(out, "%v:\t%v\n", c.Author, c.Lines)
	}

	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Total:\t%v\n", Total(counts))
}

func Total(counts []model.AuthorCount) int {
	return lo.SumBy(counts, func(c model.AuthorCount) int { return c.Lines })
}

// DescribeExtensions names the language of each extension, as far as known.
func DescribeExtensions(extensions []string) string {
	described := lo.Map(extensions, func(ext string, _ int) string {
		lang, ok := gocloc.Exts[strings.TrimPrefix(ext, ".")]
		if !ok {
			lang = "unknown"
		}
		return fmt.Sprintf("%v (%v)", ext, lang)
	})
	sort.Strings(described)
	return strings.Join(described, ", ")
}
