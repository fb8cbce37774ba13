package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/kali-teeri/internal/apperrors"
)

func TestNewSetupForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows       int
		minPlayers int
		expected   int
	}{
		{"default", 4, 3, 4},
		{"rows below minimum", 1, 3, 3},
		{"exact minimum", 3, 3, 3},
		{"no rows and no minimum", 0, 0, 1},
		{"negative sizes", -2, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := NewSetupForm(tt.rows, tt.minPlayers)
			assert.Equal(t, tt.expected, f.Rows())
			assert.Equal(t, 0, f.Focus())
			assert.True(t, f.Inputs()[0].Focused())
		})
	}
}

func TestSetupForm_Names(t *testing.T) {
	t.Parallel()

	f := NewSetupForm(4, 3)
	f.SetName(0, "  Alice ")
	f.SetName(1, "")
	f.SetName(2, "Bob")
	f.SetName(3, "Carol")

	names, err := f.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names)
	assert.NoError(t, f.Err())
}

func TestSetupForm_NamesTooFew(t *testing.T) {
	t.Parallel()

	f := NewSetupForm(4, 3)
	f.SetName(0, "Alice")
	f.SetName(1, "   ")
	f.SetName(2, "Bob")

	names, err := f.Names()
	assert.Nil(t, names)
	assert.ErrorIs(t, err, apperrors.ErrTooFewPlayers)
	assert.EqualError(t, f.Err(), "enter at least 3 player names")
}

func TestSetupForm_AddRemoveRows(t *testing.T) {
	t.Parallel()

	f := NewSetupForm(3, 3)
	assert.False(t, f.CanRemove())
	assert.False(t, f.RemoveRow())

	f.AddRow()
	assert.Equal(t, 4, f.Rows())
	assert.Equal(t, 3, f.Focus())
	assert.True(t, f.Inputs()[3].Focused())
	assert.False(t, f.Inputs()[0].Focused())

	f.SetName(3, "Dave")
	f.MoveFocus(-2)
	f.SetName(1, "Bob")
	require.True(t, f.RemoveRow())

	assert.Equal(t, 3, f.Rows())
	assert.Equal(t, "Dave", f.Inputs()[2].Value())
	assert.Equal(t, "Player 2", f.Inputs()[1].Placeholder)
	assert.True(t, f.Inputs()[f.Focus()].Focused())
}

func TestSetupForm_RemoveLastRowClampsFocus(t *testing.T) {
	t.Parallel()

	f := NewSetupForm(4, 3)
	f.MoveFocus(-1)
	require.Equal(t, 3, f.Focus())

	require.True(t, f.RemoveRow())
	assert.Equal(t, 2, f.Focus())
}

func TestSetupForm_KeepsOneRowWithoutMinimum(t *testing.T) {
	t.Parallel()

	f := NewSetupForm(1, 0)
	assert.False(t, f.CanRemove())
	assert.False(t, f.RemoveRow())
	assert.Equal(t, 1, f.Rows())
}

func TestSetupForm_MoveFocusWraps(t *testing.T) {
	t.Parallel()

	f := NewSetupForm(4, 3)
	f.MoveFocus(1)
	assert.Equal(t, 1, f.Focus())
	f.MoveFocus(3)
	assert.Equal(t, 0, f.Focus())
	f.MoveFocus(-1)
	assert.Equal(t, 3, f.Focus())
}

func TestSetupForm_UpdateTypesIntoFocusedRow(t *testing.T) {
	t.Parallel()

	f := NewSetupForm(3, 3)
	f.MoveFocus(1)
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Bob")})

	assert.Equal(t, "", f.Inputs()[0].Value())
	assert.Equal(t, "Bob", f.Inputs()[1].Value())
}
