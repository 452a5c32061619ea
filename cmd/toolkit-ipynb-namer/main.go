package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/kxue43/rename-toolkit/renamecmd"
	"github.com/kxue43/rename-toolkit/terminal"
	"github.com/kxue43/rename-toolkit/version"
)

func main() {
	var cli struct {
		renamecmd.IpynbCmd
		Version kong.VersionFlag `name:"version" help:"Show version information and quit."`
		NoColor bool             `name:"no-color" help:"Print without colors."`
	}

	ctx := kong.Parse(
		&cli,
		kong.Name("toolkit-ipynb-namer"),
		kong.Description("Append the .ipynb extension to every file in a directory, dropping any previous extension."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.String("toolkit-ipynb-namer")},
	)

	tty := terminal.NewTTY(os.Stdin, os.Stdout, "toolkit-ipynb-namer: ", !cli.NoColor)

	err := cli.Run(tty)

	if flushErr := tty.FlushLogs(); err == nil {
		err = flushErr
	}

	ctx.FatalIfErrorf(err)
}
