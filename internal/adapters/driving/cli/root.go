// Package cli provides the onboard command-line interface.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/onboardai/onboard/internal/core/ports/driven"
	"github.com/onboardai/onboard/internal/core/ports/driving"
	"github.com/onboardai/onboard/internal/logger"
)

// EnvConfigDir overrides the default configuration directory.
const EnvConfigDir = "ONBOARD_CONFIG_DIR"

// Services holds what commands operate on.
type Services struct {
	// Settings reads and writes config.toml.
	Settings driving.SettingsService

	// Auth runs consent and reports on the credential cache.
	Auth driving.AuthService

	// Sessions backs the web UI.
	Sessions driven.SessionStore

	// Watcher follows the credential cache for changes made by other processes.
	Watcher driven.FileWatcher

	// Pool bootstraps the Workspace credential and returns the dispatcher
	// pool. Bootstrap may start interactive consent, so it only runs for
	// commands that dispatch.
	Pool func(ctx context.Context) (driving.DispatcherPool, error)
}

// Bootstrap builds services rooted at configDir.
type Bootstrap func(configDir string) (*Services, error)

var (
	version = "dev"

	verbose   bool
	configDir string

	bootstrap Bootstrap
	services  *Services
)

var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "HR onboarding assistant",
	Long: `onboard schedules induction meetings, prepares welcome mail for new
employees through Google Workspace, and answers HR policy questions with Gemini.

Run 'onboard serve' for the web UI or 'onboard tui' for the terminal UI.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (default $"+EnvConfigDir+" or ~/.onboard)")
}

// SetBootstrap sets the function that wires services once flags are parsed.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version printed by 'onboard version'.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if cmd == versionCmd {
		return nil
	}
	if bootstrap == nil {
		return errors.New("services not configured")
	}

	svc, err := bootstrap(resolveConfigDir())
	if err != nil {
		return err
	}
	services = svc
	return nil
}

// resolveConfigDir returns the flag value, then the environment, then "".
// An empty result selects the default directory.
func resolveConfigDir() string {
	if configDir != "" {
		return configDir
	}
	return os.Getenv(EnvConfigDir)
}

// dispatcherPool bootstraps the pool for commands that dispatch.
func dispatcherPool(ctx context.Context) (driving.DispatcherPool, error) {
	if services == nil || services.Pool == nil {
		return nil, errors.New("dispatcher pool not configured")
	}
	return services.Pool(ctx)
}

// watchCredentials reloads the action client whenever the credential cache
// changes. It runs until ctx is cancelled.
func watchCredentials(ctx context.Context, pool driving.DispatcherPool, tokenPath string) {
	if services == nil || services.Watcher == nil {
		return
	}
	go func() {
		err := services.Watcher.Watch(ctx, tokenPath, func() {
			if err := pool.Actions().Reload(ctx); err != nil {
				logger.Debug("Reload credential: %v", err)
				return
			}
			logger.Info("Workspace credential reloaded")
		})
		if err != nil {
			logger.Warn("Credential watcher stopped: %v", err)
		}
	}()
}
