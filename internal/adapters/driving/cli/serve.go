package cli

import (
	"github.com/spf13/cobra"

	"github.com/onboardai/onboard/internal/adapters/driving/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the onboarding web UI",
	Long: `Serve the onboarding web UI.

Each browser gets its own session with its own trace and chat history.
The Workspace credential is shared; a credential written by 'onboard auth
login' in another terminal is picked up without restarting.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}
	pool, err := dispatcherPool(cmd.Context())
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = settings.Server.Addr
	}

	srv, err := web.NewServer(&web.Ports{
		Pool:       pool,
		Sessions:   services.Sessions,
		DefaultKey: settings.LLM.APIKey,
	})
	if err != nil {
		return err
	}

	watchCredentials(cmd.Context(), pool, settings.Workspace.TokenPath)

	cmd.Printf("Open http://%s in your browser\n", addr)
	return srv.ListenAndServe(cmd.Context(), addr)
}
