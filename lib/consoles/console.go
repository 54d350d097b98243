package consoles

type Console interface {
	Printf(format string, a ...any)

	// Verbosef prints only when the console is verbose.
	Verbosef(format string, a ...any)

	PushPrefix(format string, a ...any)
	PopPrefix()
}
