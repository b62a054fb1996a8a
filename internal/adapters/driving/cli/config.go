package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change settings stored in config.toml.

Keys use dot notation, for example:
  onboard config set workspace.time_zone Europe/Berlin
  onboard config set workspace.create_drafts true
  onboard config set llm.models gemini-2.0-flash,gemini-pro`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if services == nil || services.Settings == nil {
			return errors.New("settings service not configured")
		}
		cmd.Println(services.Settings.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Settings == nil {
		return errors.New("settings service not configured")
	}

	settings, err := services.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(headingStyle.Render("Current Settings"))
	cmd.Println()

	cmd.Println("[Workspace]")
	cmd.Printf("  Token Path: %s\n", settings.Workspace.TokenPath)
	cmd.Printf("  Client Secret Path: %s\n", settings.Workspace.ClientSecretPath)
	cmd.Printf("  Calendar: %s\n", settings.Workspace.CalendarID)
	cmd.Printf("  Time Zone: %s\n", settings.Workspace.TimeZone)
	cmd.Printf("  Create Drafts: %t\n", settings.Workspace.CreateDrafts)
	cmd.Printf("  Consent Timeout: %ds\n", settings.Workspace.ConsentTimeout)
	cmd.Println()

	cmd.Println("[LLM]")
	if settings.LLM.IsConfigured() {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Models: %s\n", strings.Join(settings.LLM.Models, ", "))
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	cmd.Println()

	cmd.Println(mutedStyle.Render("File: " + services.Settings.Path()))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if services == nil || services.Settings == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := services.Settings.Set(key, value); err != nil {
		return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(services.Settings.Keys(), ", "))
	}

	cmd.Printf("Set %s\n", key)
	return nil
}
