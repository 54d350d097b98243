package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

type writerConsole struct {
	out      io.Writer
	verbose  bool
	now      func() time.Time
	prefixes []string
}

// NewStdErrConsole writes diagnostics to stderr, keeping stdout for the report.
func NewStdErrConsole(verbose bool) Console {
	return NewWriterConsole(os.Stderr, verbose)
}

func NewWriterConsole(out io.Writer, verbose bool) Console {
	return &writerConsole{
		out:     out,
		verbose: verbose,
		now:     time.Now,
	}
}

func (o *writerConsole) Printf(format string, a ...any) {
	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(o.now().Format("15:04:05"))
	builder.WriteString("] ")
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	_, _ = io.WriteString(o.out, builder.String())
}

func (o *writerConsole) Verbosef(format string, a ...any) {
	if !o.verbose {
		return
	}

	o.Printf(format, a...)
}

func (o *writerConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *writerConsole) PopPrefix() {
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}
