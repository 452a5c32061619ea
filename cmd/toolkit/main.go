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
		Version kong.VersionFlag   `name:"version" help:"Show version information and quit."`
		NoColor bool               `name:"no-color" help:"Print without colors."`
		Ipynb   renamecmd.IpynbCmd `cmd:"" name:"ipynb" help:"Append the .ipynb extension to every file in a directory."`
		Snake   renamecmd.SnakeCmd `cmd:"" name:"snake" help:"Rename every file in a directory to snake_case."`
	}

	ctx := kong.Parse(
		&cli,
		kong.Name("toolkit"),
		kong.Description("Personal CLI toolkit."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.String("toolkit")},
	)

	tty := terminal.NewTTY(os.Stdin, os.Stdout, "toolkit: ", !cli.NoColor)

	err := ctx.Run(tty)

	if flushErr := tty.FlushLogs(); err == nil {
		err = flushErr
	}

	ctx.FatalIfErrorf(err)
}
