package rename

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type (
	State byte

	Reason byte

	// Outcome is the terminal state of one entry.
	Outcome struct {
		Err    error
		Old    string
		New    string
		State  State
		Reason Reason
		DryRun bool
	}

	Summary struct {
		Skipped int
		Renamed int
		Failed  int
	}

	Reporter interface {
		Report(Outcome)
	}

	ReporterFunc func(Outcome)

	Applier struct {
		fsys        FS
		transformer Transformer
		reporter    Reporter
		ignore      map[string]struct{}
		self        string
		dryRun      bool
	}
)

const (
	Skipped State = iota
	Renamed
	Failed
)

const (
	NoReason Reason = iota
	ReasonSelf
	ReasonIgnored
	ReasonUnchanged
	ReasonExists
)

var (
	ErrInvalidName = errors.New("invalid destination name")
	ErrFailures    = errors.New("some files could not be renamed")
)

func (f ReporterFunc) Report(o Outcome) {
	f(o)
}

func (s State) String() string {
	switch s {
	case Renamed:
		return "renamed"
	case Failed:
		return "failed"
	default:
		return "skipped"
	}
}

func (r Reason) String() string {
	switch r {
	case ReasonSelf:
		return "this script"
	case ReasonIgnored:
		return "ignored"
	case ReasonUnchanged:
		return "already normalized"
	case ReasonExists:
		return "destination exists"
	default:
		return ""
	}
}

func (s *Summary) add(o Outcome) {
	switch o.State {
	case Renamed:
		s.Renamed++
	case Failed:
		s.Failed++
	default:
		s.Skipped++
	}
}

// Err returns nil when no entry failed.
// Non-nil returned error wraps [ErrFailures].
func (s Summary) Err() error {
	if s.Failed == 0 {
		return nil
	}

	return fmt.Errorf("%w: %d failed, %d renamed, %d skipped", ErrFailures, s.Failed, s.Renamed, s.Skipped)
}

func NewApplier(fsys FS, t Transformer, r Reporter, cfg Config) *Applier {
	a := Applier{
		fsys:        fsys,
		transformer: t,
		reporter:    r,
		ignore:      make(map[string]struct{}, len(cfg.Ignore)),
		self:        cfg.Self,
		dryRun:      cfg.DryRun,
	}

	for _, name := range cfg.Ignore {
		a.ignore[name] = struct{}{}
	}

	return &a
}

// Plan returns the entries the applier would act on, paired with their new names.
// Entries that would be skipped for any reason other than a destination collision are left out.
func (a *Applier) Plan(entries []Entry) []Outcome {
	plans := make([]Outcome, 0, len(entries))

	for _, entry := range entries {
		if o, ok := a.check(entry); !ok {
			plans = append(plans, o)
		}
	}

	return plans
}

// Apply renames the file entries one at a time, reporting every outcome.
// A failed rename never stops the batch.
func (a *Applier) Apply(entries []Entry) (summary Summary) {
	for _, entry := range entries {
		if entry.Kind != KindFile {
			continue
		}

		o := a.apply(entry)

		summary.add(o)

		a.reporter.Report(o)
	}

	return summary
}

// check resolves everything that does not need the destination to be looked up.
// ok is true when the returned outcome is final.
func (a *Applier) check(entry Entry) (o Outcome, ok bool) {
	o = Outcome{Old: entry.Name, State: Skipped}

	if entry.Kind != KindFile {
		return o, true
	}

	if entry.Name == a.self {
		o.Reason = ReasonSelf

		return o, true
	}

	if _, found := a.ignore[entry.Name]; found {
		o.Reason = ReasonIgnored

		return o, true
	}

	if a.transformer.Done(entry.Name) {
		o.Reason = ReasonUnchanged

		return o, true
	}

	o.New = a.transformer.Transform(entry.Name)

	if o.New == entry.Name {
		o.Reason = ReasonUnchanged

		return o, true
	}

	o.State = Renamed

	return o, false
}

func (a *Applier) apply(entry Entry) Outcome {
	o, ok := a.check(entry)
	if ok {
		return o
	}

	if o.New == "" || o.New == "." || o.New == ".." {
		o.State = Failed
		o.Err = fmt.Errorf("%w: %q", ErrInvalidName, o.New)

		return o
	}

	// A destination that is the source itself under another case is a case-only
	// rename on a case-insensitive file system. Hard links are still collisions.
	if dest, err := a.fsys.Lstat(o.New); err == nil {
		src, err := a.fsys.Lstat(o.Old)
		if err != nil || !strings.EqualFold(o.Old, o.New) || !os.SameFile(src, dest) {
			o.State = Skipped
			o.Reason = ReasonExists

			return o
		}
	}

	if a.dryRun {
		o.DryRun = true

		return o
	}

	if err := a.fsys.Rename(o.Old, o.New); err != nil {
		o.State = Failed
		o.Err = err
	}

	return o
}

// Select keeps the entries named by the Old field of plans, in their original order.
func Select(entries []Entry, plans []Outcome) []Entry {
	wanted := make(map[string]struct{}, len(plans))

	for _, p := range plans {
		wanted[p.Old] = struct{}{}
	}

	selected := make([]Entry, 0, len(wanted))

	for _, entry := range entries {
		if _, found := wanted[entry.Name]; found {
			selected = append(selected, entry)
		}
	}

	return selected
}
