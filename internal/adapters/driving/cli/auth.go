package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Google Workspace credential",
	Long: `Sign in to Google Workspace and inspect the cached credential.

'onboard auth login' needs the OAuth client-secret file downloaded from the
Google Cloud console at workspace.client_secret_path (see 'onboard config show').
A browser window opens for consent; the resulting credential is cached at
workspace.token_path and picked up by running servers automatically.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Run interactive consent and cache the credential",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the cached credential state",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Auth == nil {
		return errors.New("auth service not configured")
	}

	if err := services.Auth.Login(cmd.Context()); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cmd.Println(okStyle.Render("Signed in to Google Workspace."))
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Auth == nil {
		return errors.New("auth service not configured")
	}

	status, err := services.Auth.Status(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Println(headingStyle.Render("Workspace Credential"))
	cmd.Printf("  Cache: %s\n", status.CachePath)
	cmd.Printf("  Cached: %s\n", yesNo(status.Cached))
	if status.Cached {
		cmd.Printf("  Valid: %s\n", yesNo(status.Valid))
		cmd.Printf("  Refreshable: %s\n", yesNo(status.Refreshable))
		if !status.Expiry.IsZero() {
			cmd.Printf("  Expires: %s\n", status.Expiry.Local().Format(time.RFC1123))
		}
		if len(status.Scopes) > 0 {
			cmd.Printf("  Scopes: %s\n", strings.Join(status.Scopes, " "))
		}
	}
	cmd.Printf("  Client secret: %s\n", yesNo(status.ClientSecretAvailable))

	if !status.Cached && !status.ClientSecretAvailable {
		cmd.Println()
		cmd.Println(mutedStyle.Render("Workspace actions will report auth failures until a client secret is configured."))
	}
	return nil
}
