// Package renamecmd holds the kong commands behind the rename tools.
package renamecmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/kxue43/rename-toolkit/rename"
	"github.com/kxue43/rename-toolkit/review"
	"github.com/kxue43/rename-toolkit/terminal"
)

type (
	// CommonFlags are shared by both tools. Zero values mean "not given" so that a config file can fill them in.
	CommonFlags struct {
		Dir    string `name:"dir" short:"C" placeholder:"DIR" help:"Directory whose files are renamed. Defaults to the current directory."`
		Config string `name:"config" type:"existingfile" placeholder:"FILE" help:"TOML or YAML file with dir, ext, ignore and dry-run settings."`
		DryRun bool   `name:"dry-run" short:"n" help:"Report what would be renamed without renaming anything."`
		Strict bool   `name:"strict" help:"Exit with a non-zero status when a file could not be renamed."`
	}

	IpynbCmd struct {
		CommonFlags
		cfg    rename.Config
		Ext    string   `name:"ext" placeholder:"EXT" help:"Target extension. Defaults to ipynb."`
		Ignore []string `name:"ignore" placeholder:"NAME" help:"File names left untouched. Defaults to app.py."`
	}

	SnakeCmd struct {
		CommonFlags
		cfg      rename.Config
		reviewer func(io.Reader, []rename.Outcome) ([]rename.Outcome, bool, error)
		Yes      bool   `name:"yes" short:"y" help:"Skip the confirmation prompt."`
		Review   bool   `name:"review" short:"r" help:"Pick the renames to apply in an interactive list."`
		DebugLog string `name:"debug-log" placeholder:"FILE" hidden:"" help:"Dump every message of the interactive list to FILE."`
	}
)

// resolve builds the effective configuration: compiled-in defaults,
// then the config file, then flags that were given.
//
// Non-nil returned error wraps [rename.ErrConfig].
func (f *CommonFlags) resolve(cfg *rename.Config) error {
	*cfg = rename.Config{
		Dir:    ".",
		Ext:    rename.DefaultExt,
		Ignore: slices.Clone(rename.DefaultIgnore),
		Self:   filepath.Base(os.Args[0]),
	}

	if f.Config != "" {
		if err := rename.LoadConfig(f.Config, cfg); err != nil {
			return err
		}
	}

	if f.Dir != "" {
		cfg.Dir = f.Dir
	}

	if f.DryRun {
		cfg.DryRun = true
	}

	return cfg.Validate()
}

// Non-nil returned error wraps [rename.ErrConfig].
func (c *IpynbCmd) AfterApply() error {
	if err := c.resolve(&c.cfg); err != nil {
		return err
	}

	if c.Ext != "" {
		c.cfg.Ext = c.Ext
	}

	if c.Ignore != nil {
		c.cfg.Ignore = c.Ignore
	}

	return c.cfg.Validate()
}

// Run appends the target extension to every file of the directory.
// Directory read failures and rename failures are printed, and only turn into
// a returned error with --strict.
func (c *IpynbCmd) Run(tty *terminal.TTY) error {
	fsys := rename.OSFS{Dir: c.cfg.Dir}

	entries, err := rename.Enumerate(fsys)
	if err != nil {
		tty.Error(fmt.Sprintf("Error reading directory: %s", err))

		return c.strict(err)
	}

	if c.cfg.DryRun {
		tty.Info(fmt.Sprintf("Dry run in %q, nothing will be renamed.", c.cfg.Dir))
	}

	reporter := rename.LineReporter{Console: tty, Quiet: !c.cfg.DryRun}

	summary := rename.NewApplier(fsys, rename.ExtAppender{Ext: c.cfg.Ext}, reporter, c.cfg).Apply(entries)

	tty.Info("Done.")

	return c.strict(summary.Err())
}

// Non-nil returned error wraps [rename.ErrConfig].
func (c *SnakeCmd) AfterApply() error {
	if err := c.resolve(&c.cfg); err != nil {
		return err
	}

	// Ignore lists only make sense for the extension tool.
	c.cfg.Ignore = nil

	c.reviewer = func(in io.Reader, plans []rename.Outcome) ([]rename.Outcome, bool, error) {
		dump, closeDump, err := openDump(c.DebugLog)
		if err != nil {
			return nil, false, err
		}

		defer closeDump()

		m, err := review.Run(plans, in, os.Stderr, dump)
		if err != nil {
			return nil, false, err
		}

		return m.Selected(), m.Submitted(), nil
	}

	return nil
}

// Run asks for confirmation, then normalizes every file name of the directory to snake case.
func (c *SnakeCmd) Run(tty *terminal.TTY) error {
	tty.Info("This will rename all FILES (not directories) in this folder to snake_case.")
	tty.Info("Example: 'My File-Test.txt' -> 'my_file_test.txt'")

	if !c.Yes {
		ok, err := tty.Confirm("ARE YOU SURE? This cannot be undone. (y/n): ")
		if err != nil {
			tty.Print(err.Error())
		}

		if !ok {
			tty.Info("Action cancelled.")

			return nil
		}
	}

	tty.Info("--- Starting rename operation (files only) ---")

	fsys := rename.OSFS{Dir: c.cfg.Dir}

	entries, err := rename.Enumerate(fsys)
	if err != nil {
		tty.Error(fmt.Sprintf("Error reading directory: %s", err))

		return c.strict(err)
	}

	applier := rename.NewApplier(fsys, rename.Normalizer{}, rename.LineReporter{Console: tty}, c.cfg)

	if c.Review {
		selected, submitted, err := c.reviewer(tty.Reader(), applier.Plan(entries))
		if err != nil {
			return err
		}

		if !submitted {
			tty.Info("Action cancelled.")

			return nil
		}

		entries = rename.Select(entries, selected)
	}

	summary := applier.Apply(entries)

	tty.Info(fmt.Sprintf("%d renamed, %d skipped, %d failed", summary.Renamed, summary.Skipped, summary.Failed))

	tty.Info("--- Rename operation complete ---")

	return c.strict(summary.Err())
}

func (f *CommonFlags) strict(err error) error {
	if f.Strict {
		return err
	}

	return nil
}

func openDump(path string) (dump io.Writer, closeFunc func(), err error) {
	if path == "" {
		return nil, func() {}, nil
	}

	fd, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log file %q: %w", path, err)
	}

	return fd, func() { _ = fd.Close() }, nil
}
