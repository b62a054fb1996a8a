package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/onboardai/onboard/internal/adapters/driving/mcp"
	"github.com/onboardai/onboard/internal/core/domain"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose onboarding tools over MCP",
	Long: `Start an MCP server exposing onboard_employee, ask_policy and
session_trace to MCP clients.

By default the server speaks over stdio. With --port it serves streamable
HTTP on 127.0.0.1 instead.`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVar(&mcpPort, "port", 0, "serve streamable HTTP on this port instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}
	pool, err := dispatcherPool(cmd.Context())
	if err != nil {
		return err
	}

	srv, err := mcp.NewServer(&mcp.Ports{
		Pool:    pool,
		Session: domain.NewSession(uuid.NewString(), nil),
		APIKey:  settings.LLM.APIKey,
	})
	if err != nil {
		return err
	}

	watchCredentials(cmd.Context(), pool, settings.Workspace.TokenPath)

	if mcpPort > 0 {
		return srv.RunHTTP(cmd.Context(), fmt.Sprintf("127.0.0.1:%d", mcpPort))
	}
	return srv.Run(cmd.Context())
}
