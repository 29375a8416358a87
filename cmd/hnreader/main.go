// Command hnreader is a terminal Hacker News reader.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// CLI is the command line of hnreader.
type CLI struct {
	Config string `help:"Path to config file." type:"path" short:"c"`

	Read    ReadCmd    `cmd:"" default:"withargs" help:"Browse the front page (default)."`
	History HistoryCmd `cmd:"" help:"List recently opened stories."`
}

// Globals is passed to every command's Run method.
type Globals struct {
	ConfigPath string
	Stdout     io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("hnreader"),
		kong.Description("Read Hacker News in the terminal."),
		kong.UsageOnError(),
		kong.Writers(stdout, os.Stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(&Globals{ConfigPath: cli.Config, Stdout: stdout})
}
