package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driven"
	"github.com/onboardai/onboard/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyTokenPath      = "workspace.token_path"
	keySecretPath     = "workspace.client_secret_path"
	keyCalendarID     = "workspace.calendar_id"
	keyTimeZone       = "workspace.time_zone"
	keyCreateDrafts   = "workspace.create_drafts"
	keyConsentTimeout = "workspace.consent_timeout"
	keyLLMAPIKey      = "llm.api_key"
	keyLLMModels      = "llm.models"
	keyServerAddr     = "server.addr"
)

// EnvAPIKey overrides llm.api_key when set.
//
//nolint:gosec // G101: environment variable name.
const EnvAPIKey = "GEMINI_API_KEY"

// settingKeys lists the supported keys in display order.
var settingKeys = []string{
	keyTokenPath,
	keySecretPath,
	keyCalendarID,
	keyTimeZone,
	keyCreateDrafts,
	keyConsentTimeout,
	keyLLMAPIKey,
	keyLLMModels,
	keyServerAddr,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	configDir   string
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
// configDir roots the default credential and client-secret paths.
func NewSettingsService(configStore driven.ConfigStore, configDir string) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		configDir:   configDir,
		getenv:      os.Getenv,
	}
}

// WithEnv replaces the environment lookup. Used in tests.
func (s *SettingsService) WithEnv(getenv func(string) string) *SettingsService {
	s.getenv = getenv
	return s
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := s.GetDefaults()

	settings := &domain.AppSettings{
		Workspace: domain.WorkspaceSettings{
			TokenPath:        s.getString(keyTokenPath, defaults.Workspace.TokenPath),
			ClientSecretPath: s.getString(keySecretPath, defaults.Workspace.ClientSecretPath),
			CalendarID:       s.getString(keyCalendarID, defaults.Workspace.CalendarID),
			TimeZone:         s.getString(keyTimeZone, defaults.Workspace.TimeZone),
			CreateDrafts:     s.getBool(keyCreateDrafts, defaults.Workspace.CreateDrafts),
			ConsentTimeout:   s.getInt(keyConsentTimeout, defaults.Workspace.ConsentTimeout),
		},
		LLM: domain.LLMSettings{
			APIKey: s.configStore.GetString(keyLLMAPIKey),
			Models: s.getStringSlice(keyLLMModels, defaults.LLM.Models),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddr, defaults.Server.Addr),
		},
	}

	if key := s.getenv(EnvAPIKey); key != "" {
		settings.LLM.APIKey = key
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Set stores a single setting and persists the configuration file.
// Values are parsed according to the key: workspace.create_drafts is a bool,
// workspace.consent_timeout an int, llm.models a comma-separated list.
func (s *SettingsService) Set(key, value string) error {
	var parsed any
	switch key {
	case keyCreateDrafts:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	case keyConsentTimeout:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive number of seconds", domain.ErrInvalidInput, key)
		}
		parsed = n
	case keyLLMModels:
		models := splitList(value)
		if len(models) == 0 {
			return fmt.Errorf("%w: %s needs at least one model", domain.ErrInvalidInput, key)
		}
		parsed = models
	case keyTimeZone:
		if _, err := (domain.WorkspaceSettings{TimeZone: value}).Location(); err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
		}
		parsed = value
	case keyTokenPath, keySecretPath, keyCalendarID, keyLLMAPIKey, keyServerAddr:
		parsed = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return s.configStore.Save()
}

// Keys returns the supported setting keys in display order.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings(s.configDir)
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
