package cli

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/onboardai/onboard/internal/adapters/driving/tui"
	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}
	pool, err := dispatcherPool(cmd.Context())
	if err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{
		Pool:    pool,
		Session: domain.NewSession(uuid.NewString(), nil),
		APIKey:  settings.LLM.APIKey,
	})
	if err != nil {
		return err
	}

	// Log lines would tear the alternate screen.
	if !logger.IsVerbose() {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)
	}

	watchCredentials(cmd.Context(), pool, settings.Workspace.TokenPath)
	return app.WithContext(cmd.Context()).Run()
}
