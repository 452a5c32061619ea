package review

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxue43/rename-toolkit/rename"
)

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd

	for _, msg := range msgs {
		var next tea.Model

		next, cmd = m.Update(msg)

		var ok bool

		m, ok = next.(Model)
		require.True(t, ok, "Update should return a review.Model")
	}

	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testPlans() []rename.Outcome {
	return []rename.Outcome{
		{Old: "A File", New: "a_file", State: rename.Renamed},
		{Old: "B File", New: "b_file", State: rename.Renamed},
		{Old: "C File", New: "c_file", State: rename.Renamed},
	}
}

func TestSubmitAll(t *testing.T) {
	m, cmd := press(t, New(testPlans(), nil), tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.True(t, m.Submitted())
	assert.Equal(t, testPlans(), m.Selected())
}

func TestUntickAndSubmit(t *testing.T) {
	m, _ := press(t, New(testPlans(), nil),
		runes("j"),
		runes("x"),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	plans := testPlans()

	assert.Equal(t, []rename.Outcome{plans[0], plans[2]}, m.Selected())
}

func TestToggleAll(t *testing.T) {
	m, _ := press(t, New(testPlans(), nil), runes("x"), runes("a"))

	for _, it := range m.items {
		assert.True(t, it.drop, "every item should be dropped after toggling all")
	}

	m, _ = press(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, testPlans(), m.Selected())
}

func TestQuitSelectsNothing(t *testing.T) {
	m, cmd := press(t, New(testPlans(), nil), tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.False(t, m.Submitted())
	assert.Nil(t, m.Selected())
}

func TestView(t *testing.T) {
	m, _ := press(t, New(testPlans(), nil), runes("x"))

	view := m.View()

	assert.Contains(t, view, "[ ] ")
	assert.Contains(t, view, "[x] ")
	assert.Contains(t, view, "B File")
	assert.Contains(t, view, "c_file")

	assert.Contains(t, New(nil, nil).View(), "Nothing to rename.")
}

func TestDump(t *testing.T) {
	var dump bytes.Buffer

	_, _ = press(t, New(testPlans(), &dump), runes("j"))

	assert.Contains(t, dump.String(), "tea.KeyMsg")
}
