package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// Default setting values.
const (
	DefaultCalendarID     = "primary"
	DefaultTimeZone       = "Asia/Kolkata"
	DefaultConsentTimeout = 300
	DefaultServerAddr     = ":8501"
	DefaultTokenFile      = "token.json"
	DefaultSecretFile     = "credentials.json"
)

// WorkspaceSettings configures the Credentialed Action Client.
type WorkspaceSettings struct {
	// TokenPath is the credential cache file.
	TokenPath string
	// ClientSecretPath is the OAuth client-secret file used for interactive consent.
	ClientSecretPath string
	// CalendarID is the calendar induction events are inserted into.
	CalendarID string
	// TimeZone is the IANA zone the induction slot is expressed in.
	TimeZone string
	// CreateDrafts also creates a Gmail draft during the welcome-mail step.
	CreateDrafts bool
	// ConsentTimeout bounds interactive consent, in seconds.
	ConsentTimeout int
}

// Location resolves the configured time zone.
func (w WorkspaceSettings) Location() (*time.Location, error) {
	return time.LoadLocation(w.TimeZone)
}

// ConsentTimeoutDuration returns the consent timeout as a duration.
func (w WorkspaceSettings) ConsentTimeoutDuration() time.Duration {
	if w.ConsentTimeout <= 0 {
		return DefaultConsentTimeout * time.Second
	}
	return time.Duration(w.ConsentTimeout) * time.Second
}

// LLMSettings configures the Grounded Query Responder.
type LLMSettings struct {
	// APIKey is the Gemini API key. Empty means the UI must supply one.
	APIKey string
	// Models is the candidate list in priority order.
	Models []string
}

// IsConfigured returns true if an API key is present.
func (l LLMSettings) IsConfigured() bool {
	return l.APIKey != ""
}

// ServerSettings configures the web UI.
type ServerSettings struct {
	// Addr is the listen address.
	Addr string
}

// AppSettings is the full application configuration.
type AppSettings struct {
	Workspace WorkspaceSettings
	LLM       LLMSettings
	Server    ServerSettings
}

// DefaultAppSettings returns settings with file paths rooted at configDir.
func DefaultAppSettings(configDir string) AppSettings {
	models := make([]string, len(DefaultModelCandidates))
	copy(models, DefaultModelCandidates)

	return AppSettings{
		Workspace: WorkspaceSettings{
			TokenPath:        filepath.Join(configDir, DefaultTokenFile),
			ClientSecretPath: filepath.Join(configDir, DefaultSecretFile),
			CalendarID:       DefaultCalendarID,
			TimeZone:         DefaultTimeZone,
			ConsentTimeout:   DefaultConsentTimeout,
		},
		// Key is left empty - supplied via config, environment or the UI
		LLM: LLMSettings{
			Models: models,
		},
		Server: ServerSettings{
			Addr: DefaultServerAddr,
		},
	}
}

// Validate checks the settings are usable.
func (s *AppSettings) Validate() error {
	if s.Workspace.TokenPath == "" {
		return fmt.Errorf("%w: workspace.token_path is empty", ErrInvalidInput)
	}
	if s.Workspace.CalendarID == "" {
		return fmt.Errorf("%w: workspace.calendar_id is empty", ErrInvalidInput)
	}
	if _, err := s.Workspace.Location(); err != nil {
		return fmt.Errorf("%w: workspace.time_zone: %w", ErrInvalidInput, err)
	}
	if len(s.LLM.Models) == 0 {
		return fmt.Errorf("%w: llm.models is empty", ErrInvalidInput)
	}
	if s.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidInput)
	}
	return nil
}
