package terminal

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type (
	// TTY is line-oriented console I/O shared by a command and its logger.
	// Log lines are buffered and only written out by FlushLogs.
	TTY struct {
		in     *bufio.Reader
		out    io.Writer
		logger *log.Logger
		styles styles
		buf    bytes.Buffer
		mux    sync.Mutex
	}

	styles struct {
		success lipgloss.Style
		warn    lipgloss.Style
		err     lipgloss.Style
	}
)

// NewTTY reads answers from in and writes lines to out.
// With color false, or when out is not a terminal, lines are written without escape sequences.
func NewTTY(in io.Reader, out io.Writer, prefix string, color bool) *TTY {
	tty := TTY{in: bufio.NewReader(in), out: out}

	tty.logger = log.New(&tty.buf, prefix, 0)

	renderer := lipgloss.NewRenderer(out)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
	}

	tty.styles = styles{
		success: renderer.NewStyle().Foreground(lipgloss.Color("2")),
		warn:    renderer.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		err:     renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}

	return &tty
}

func (t *TTY) println(s string) {
	t.mux.Lock()
	defer t.mux.Unlock()

	_, _ = io.WriteString(t.out, s+"\n")
}

func (t *TTY) Info(s string) {
	t.println(s)
}

func (t *TTY) Success(s string) {
	t.println(t.styles.success.Render(s))
}

func (t *TTY) Warn(s string) {
	t.println(t.styles.warn.Render(s))
}

func (t *TTY) Error(s string) {
	t.println(t.styles.err.Render(s))
}

// Confirm writes prompt and reads one line of answer.
// Only "y" or "Y" confirms. End of input before any answer counts as a refusal,
// in which case a newline is written so that following lines start at column zero.
func (t *TTY) Confirm(prompt string) (bool, error) {
	t.mux.Lock()
	defer t.mux.Unlock()

	if _, err := io.WriteString(t.out, prompt); err != nil {
		return false, fmt.Errorf("failed to prompt for confirmation: %w", err)
	}

	answer, err := t.in.ReadString('\n')
	if errors.Is(err, io.EOF) && answer == "" {
		_, _ = io.WriteString(t.out, "\n")

		return false, nil
	} else if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation from user input: %w", err)
	}

	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

// Reader returns the buffered input that Confirm reads from, so that later
// readers of the same input do not miss bytes already buffered.
func (t *TTY) Reader() io.Reader {
	return t.in
}

func (t *TTY) Printf(format string, v ...any) {
	t.mux.Lock()
	defer t.mux.Unlock()

	t.logger.Printf(format, v...)
}

func (t *TTY) Print(v ...any) {
	t.mux.Lock()
	defer t.mux.Unlock()

	t.logger.Print(v...)
}

func (t *TTY) FlushLogs() error {
	t.mux.Lock()
	defer t.mux.Unlock()

	_, err := t.out.Write(t.buf.Bytes())

	t.buf.Reset()

	return err
}
