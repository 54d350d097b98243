package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msimms/gitstats/lib/model"
)

func TestAcceptEmpty(t *testing.T) {
	t.Parallel()

	assert.False(t, Accept("", ".py", true, true, true))
	assert.False(t, Accept("   \t", ".py", false, true, false))
	assert.True(t, Accept("   \t", ".py", false, false, false))
}

func TestAcceptPython(t *testing.T) {
	t.Parallel()

	assert.False(t, Accept("# comment", ".py", true, true, true))
	assert.False(t, Accept("   # indented comment", ".py", true, true, true))
	assert.True(t, Accept("# comment", ".py", false, true, true))
	assert.True(t, Accept("x = 1", ".py", true, true, true))
	assert.True(t, Accept("x = 1  # trailing", ".py", true, true, true))
}

func TestAcceptCFamily(t *testing.T) {
	t.Parallel()

	assert.True(t, Accept("int x = 1;", ".cpp", true, true, true))
	assert.False(t, Accept(";", ".cpp", true, true, true))
	assert.False(t, Accept("; int x", ".cpp", true, true, true))
	assert.False(t, Accept("if (x) {", ".c", true, true, true))
	assert.True(t, Accept("if (x) {", ".c", true, true, false))
	assert.False(t, Accept("// x = 1;", ".rs", true, true, true))
	assert.False(t, Accept("/* x = 1; */", ".java", true, true, true))
	assert.True(t, Accept("  return 0;  ", ".h", true, true, true))
	assert.True(t, Accept(" * x;", ".m", true, true, true))
}

func TestAcceptAssembly(t *testing.T) {
	t.Parallel()

	assert.False(t, Accept("; comment", ".asm", true, true, false))
	assert.True(t, Accept("mov ax, bx", ".asm", true, true, false))
	assert.False(t, Accept("mov ax, bx", ".asm", true, true, true))
}

func TestAcceptUnknownExtension(t *testing.T) {
	t.Parallel()

	assert.True(t, Accept("// not a comment here", ".go", true, true, false))
	assert.False(t, Accept("x := 1;", ".go", true, true, true))
	assert.True(t, Accept("x := 1", ".go", false, false, false))
}

func TestFiltersAllDisabled(t *testing.T) {
	t.Parallel()

	f := Filters{}

	assert.True(t, f.Accept("", model.NewFileContext(".c")))
	assert.True(t, f.Accept("// c", model.NewFileContext(".c")))
}

func TestDefaultFilters(t *testing.T) {
	t.Parallel()

	f := DefaultFilters()
	file := model.NewFileContextForPath("src/main.c")

	assert.True(t, f.Accept("\tputs(\"x\");", file))
	assert.False(t, f.Accept("\t/* x; */", file))
	assert.False(t, f.Accept("", file))
}
