package rename

import "fmt"

type (
	// Console receives one line per call, already formatted.
	Console interface {
		Info(string)
		Success(string)
		Warn(string)
		Error(string)
	}

	// LineReporter prints outcomes as progress lines.
	// In Quiet mode only warnings and errors are printed.
	LineReporter struct {
		Console Console
		Quiet   bool
	}
)

func (r LineReporter) Report(o Outcome) {
	switch {
	case o.State == Failed:
		r.Console.Error(fmt.Sprintf("Error renaming '%s': %s", o.Old, o.Err))
	case o.State == Skipped && o.Reason == ReasonExists:
		r.Console.Warn(fmt.Sprintf("WARNING: '%s' already exists. Skipping rename of '%s'.", o.New, o.Old))
	case r.Quiet:
		return
	case o.State == Renamed && o.DryRun:
		r.Console.Info(fmt.Sprintf("Would rename: '%s' -> '%s'", o.Old, o.New))
	case o.State == Renamed:
		r.Console.Success(fmt.Sprintf("Renamed: '%s' -> '%s'", o.Old, o.New))
	case o.Reason == ReasonSelf:
		r.Console.Info(fmt.Sprintf("Skipping '%s' (this script)...", o.Old))
	case o.Reason == ReasonIgnored:
		r.Console.Info(fmt.Sprintf("Skipping '%s' (ignored).", o.Old))
	case o.Reason == ReasonUnchanged:
		r.Console.Info(fmt.Sprintf("Skipping '%s' (already normalized).", o.Old))
	}
}
