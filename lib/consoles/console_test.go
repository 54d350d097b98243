package consoles

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestConsole(verbose bool) (*writerConsole, *bytes.Buffer) {
	out := &bytes.Buffer{}
	c := NewWriterConsole(out, verbose).(*writerConsole)
	c.now = func() time.Time { return time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC) }
	return c, out
}

func TestPrintf(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole(false)

	c.Printf("hello %v\n", 1)

	assert.Equal(t, "[03:04:05] hello 1\n", out.String())
}

func TestPrefixes(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole(false)

	c.PushPrefix("%v: ", "repo")
	c.PushPrefix("a.c: ")
	c.Printf("x\n")
	c.PopPrefix()
	c.Printf("y\n")
	c.PopPrefix()
	c.Printf("z\n")

	assert.Equal(t, "[03:04:05] repo: a.c: x\n[03:04:05] repo: y\n[03:04:05] z\n", out.String())
}

func TestVerbosef(t *testing.T) {
	t.Parallel()

	quiet, quietOut := newTestConsole(false)
	quiet.Verbosef("hidden\n")
	assert.Empty(t, quietOut.String())

	loud, loudOut := newTestConsole(true)
	loud.Verbosef("shown\n")
	assert.Equal(t, "[03:04:05] shown\n", loudOut.String())
}
