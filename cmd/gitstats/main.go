package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/msimms/gitstats/lib/consoles"
)

var cli countCmd

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("gitstats"),
		kong.Description("Counts the lines of a git repository last modified by each author."),
		kong.ShortUsageOnError(),
		kong.Configuration(kong.JSON, ".gitstats.json"),
	)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.Run(runCtx, consoles.NewStdErrConsole(cli.Verbose), os.Stdout)
	ctx.FatalIfErrorf(err)
}
