package rename

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type lines struct {
	info, success, warn, err []string
}

func (l *lines) Info(s string)    { l.info = append(l.info, s) }
func (l *lines) Success(s string) { l.success = append(l.success, s) }
func (l *lines) Warn(s string)    { l.warn = append(l.warn, s) }
func (l *lines) Error(s string)   { l.err = append(l.err, s) }

func TestLineReporter(t *testing.T) {
	outcomes := []Outcome{
		{Old: "toolkit-snake-case", State: Skipped, Reason: ReasonSelf},
		{Old: "done.txt", State: Skipped, Reason: ReasonUnchanged},
		{Old: "My File.txt", New: "my_file.txt", State: Skipped, Reason: ReasonExists},
		{Old: "A B", New: "a_b", State: Renamed},
		{Old: "C D", New: "c_d", State: Renamed, DryRun: true},
		{Old: "E F", New: "e_f", State: Failed, Err: errors.New("permission denied")},
	}

	t.Run("verbose", func(t *testing.T) {
		l := lines{}

		r := LineReporter{Console: &l}
		for _, o := range outcomes {
			r.Report(o)
		}

		assert.Equal(t, []string{
			"Skipping 'toolkit-snake-case' (this script)...",
			"Skipping 'done.txt' (already normalized).",
			"Would rename: 'C D' -> 'c_d'",
		}, l.info)
		assert.Equal(t, []string{"Renamed: 'A B' -> 'a_b'"}, l.success)
		assert.Equal(t, []string{"WARNING: 'my_file.txt' already exists. Skipping rename of 'My File.txt'."}, l.warn)
		assert.Equal(t, []string{"Error renaming 'E F': permission denied"}, l.err)
	})

	t.Run("quiet", func(t *testing.T) {
		l := lines{}

		r := LineReporter{Console: &l, Quiet: true}
		for _, o := range outcomes {
			r.Report(o)
		}

		assert.Empty(t, l.info)
		assert.Empty(t, l.success)
		assert.Len(t, l.warn, 1)
		assert.Len(t, l.err, 1)
	})
}
