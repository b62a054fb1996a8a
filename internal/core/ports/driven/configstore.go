package driven

// ConfigStore holds settings under dotted keys such as "workspace.calendar_id",
// where the part before the first dot names the section.
type ConfigStore interface {
	// Get returns the raw value stored under key.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "" when absent or of another type.
	GetString(key string) string

	// GetInt returns the value as an int, or 0 when absent or not numeric.
	GetInt(key string) int

	// GetBool returns the value as a bool, or false when absent.
	GetBool(key string) bool

	// GetStringSlice returns a list value, or nil when absent.
	GetStringSlice(key string) []string

	// Set stores value under key. File-backed stores write through.
	Set(key string, value any) error

	// Save writes all values to the backing file.
	Save() error

	// Load replaces in-memory values with the backing file's contents.
	Load() error

	// Path returns where values are persisted.
	Path() string
}
