package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/kali-teeri/internal/apperrors"
)

const (
	nameCharLimit  = 20
	nameInputWidth = 24
)

// SetupForm collects player names before a game starts.
type SetupForm struct {
	inputs     []textinput.Model
	focus      int
	minPlayers int
	err        error
}

// NewSetupForm creates a form with rows empty name inputs. Rows never drop
// below minPlayers, and the form always has at least one row.
func NewSetupForm(rows, minPlayers int) *SetupForm {
	f := &SetupForm{minPlayers: minPlayers}
	for range max(rows, minPlayers, 1) {
		f.inputs = append(f.inputs, newNameInput(len(f.inputs)+1))
	}
	f.inputs[0].Focus()
	return f
}

func newNameInput(n int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("Player %d", n)
	ti.CharLimit = nameCharLimit
	ti.Width = nameInputWidth
	return ti
}

func (f *SetupForm) Inputs() []textinput.Model { return f.inputs }
func (f *SetupForm) Rows() int                 { return len(f.inputs) }
func (f *SetupForm) Focus() int                { return f.focus }
func (f *SetupForm) MinPlayers() int           { return f.minPlayers }
func (f *SetupForm) Err() error                { return f.err }
func (f *SetupForm) CanRemove() bool           { return len(f.inputs) > max(f.minPlayers, 1) }

// SetName overwrites the name in row i.
func (f *SetupForm) SetName(i int, name string) {
	if i >= 0 && i < len(f.inputs) {
		f.inputs[i].SetValue(name)
	}
}

// AddRow appends an empty row and focuses it.
func (f *SetupForm) AddRow() tea.Cmd {
	f.inputs = append(f.inputs, newNameInput(len(f.inputs)+1))
	f.err = nil
	return f.setFocus(len(f.inputs) - 1)
}

// RemoveRow deletes the focused row unless the form is at its minimum size.
func (f *SetupForm) RemoveRow() bool {
	if !f.CanRemove() {
		return false
	}
	f.inputs = append(f.inputs[:f.focus], f.inputs[f.focus+1:]...)
	for i := range f.inputs {
		f.inputs[i].Placeholder = fmt.Sprintf("Player %d", i+1)
	}
	f.focus = min(f.focus, len(f.inputs)-1)
	f.inputs[f.focus].Focus()
	f.err = nil
	return true
}

// MoveFocus moves the cursor delta rows, wrapping around.
func (f *SetupForm) MoveFocus(delta int) tea.Cmd {
	n := len(f.inputs)
	return f.setFocus(((f.focus+delta)%n + n) % n)
}

func (f *SetupForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// Update forwards msg to the focused input.
func (f *SetupForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.err = nil
	return cmd
}

// Names returns the trimmed, non-blank names in row order. It fails when
// fewer than the minimum number of players were entered.
func (f *SetupForm) Names() ([]string, error) {
	names := make([]string, 0, len(f.inputs))
	for _, in := range f.inputs {
		if name := strings.TrimSpace(in.Value()); name != "" {
			names = append(names, name)
		}
	}
	if len(names) < f.minPlayers {
		f.err = apperrors.ErrTooFewPlayers.Withf("enter at least %d player names", f.minPlayers)
		return nil, f.err
	}
	f.err = nil
	return names, nil
}
