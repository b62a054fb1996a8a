package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestBar_View(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		message string
		want    string
	}{
		{"ready", StateReady, "", "Workspace"},
		{"ready with message", StateReady, "Key saved.", "Key saved."},
		{"working default", StateWorking, "", "Working..."},
		{"working", StateWorking, "Onboarding Asha Rao...", "Onboarding Asha Rao..."},
		{"error", StateError, "Enter a name.", "Enter a name."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(160)
			bar.SetState(tt.state, tt.message)

			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestBar_Indicators(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(160)

	bar.SetIndicators(true, false)
	view := bar.View()

	assert.Contains(t, view, "● Workspace")
	assert.Contains(t, view, "○ Gemini key")
}

func TestBar_ShowsHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(160)

	assert.Contains(t, bar.View(), "enter: submit")
}
