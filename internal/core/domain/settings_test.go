package domain

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings("/home/hr/.onboard")

	assert.Equal(t, filepath.Join("/home/hr/.onboard", "token.json"), s.Workspace.TokenPath)
	assert.Equal(t, filepath.Join("/home/hr/.onboard", "credentials.json"), s.Workspace.ClientSecretPath)
	assert.Equal(t, "primary", s.Workspace.CalendarID)
	assert.Equal(t, "Asia/Kolkata", s.Workspace.TimeZone)
	assert.False(t, s.Workspace.CreateDrafts)
	assert.Equal(t, DefaultModelCandidates, s.LLM.Models)
	assert.False(t, s.LLM.IsConfigured())
	assert.Equal(t, ":8501", s.Server.Addr)
	require.NoError(t, s.Validate())
}

func TestDefaultAppSettings_ModelsAreCopied(t *testing.T) {
	s := DefaultAppSettings("dir")
	s.LLM.Models[0] = "changed"

	assert.Equal(t, "gemini-2.0-flash", DefaultModelCandidates[0])
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppSettings)
	}{
		{"empty token path", func(s *AppSettings) { s.Workspace.TokenPath = "" }},
		{"empty calendar", func(s *AppSettings) { s.Workspace.CalendarID = "" }},
		{"bad time zone", func(s *AppSettings) { s.Workspace.TimeZone = "Mars/Olympus" }},
		{"no models", func(s *AppSettings) { s.LLM.Models = nil }},
		{"no addr", func(s *AppSettings) { s.Server.Addr = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings("dir")
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestWorkspaceSettings_ConsentTimeoutDuration(t *testing.T) {
	assert.Equal(t, 300*time.Second, WorkspaceSettings{}.ConsentTimeoutDuration())
	assert.Equal(t, 30*time.Second, WorkspaceSettings{ConsentTimeout: 30}.ConsentTimeoutDuration())
}
