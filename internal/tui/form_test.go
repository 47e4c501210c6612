package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cilansSlodhi/todo-list/internal/model"
)

func TestFormExpandsOnFirstFocus(t *testing.T) {
	f := newAddForm(newKeyMap())
	assert.False(t, f.expanded)
	assert.NotContains(t, f.View(), "Priority:")

	f.Focus()
	assert.True(t, f.expanded)
	assert.Contains(t, f.View(), "Priority:")

	f.Blur()
	assert.True(t, f.expanded, "blur does not collapse the picker")
}

func TestFormBlankSubmitIsIgnored(t *testing.T) {
	f := newAddForm(newKeyMap())
	f.Focus()
	f.input.SetValue("   ")

	f, cmd := f.Update(press("enter"))
	assert.Nil(t, cmd)
	assert.False(t, f.CanSubmit())
	assert.Equal(t, "   ", f.input.Value())
}

func TestFormSubmitResets(t *testing.T) {
	f := newAddForm(newKeyMap())
	f.Focus()
	f.input.SetValue("  Buy milk  ")

	f, _ = f.Update(press("tab"))
	assert.Equal(t, model.PriorityHigh, f.priority)
	f, _ = f.Update(press("tab"))
	assert.Equal(t, model.PriorityLow, f.priority)

	f, cmd := f.Update(press("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, createRequestMsg{Text: "Buy milk", Priority: model.PriorityLow}, cmd())

	assert.Empty(t, f.input.Value())
	assert.Equal(t, model.PriorityMedium, f.priority)
	assert.False(t, f.expanded)
	assert.False(t, f.Focused())
}

func TestFormPriorityNeedsExpandedPicker(t *testing.T) {
	f := newAddForm(newKeyMap())
	f, _ = f.Update(press("tab"))
	assert.Equal(t, model.PriorityMedium, f.priority)

	f.Focus()
	f, _ = f.Update(press("shift+tab"))
	assert.Equal(t, model.PriorityLow, f.priority)
}
