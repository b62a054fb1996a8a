// Command onboard is the OnboardAI HR onboarding assistant.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/onboardai/onboard/internal/adapters/driven/config/file"
	"github.com/onboardai/onboard/internal/adapters/driven/llm/gemini"
	"github.com/onboardai/onboard/internal/adapters/driven/oauth"
	"github.com/onboardai/onboard/internal/adapters/driven/storage/memory"
	"github.com/onboardai/onboard/internal/adapters/driven/watch"
	"github.com/onboardai/onboard/internal/adapters/driving/cli"
	"github.com/onboardai/onboard/internal/connectors/google"
	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driving"
	"github.com/onboardai/onboard/internal/core/services"
	"github.com/onboardai/onboard/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore, configDir)

	// Invalid settings must not lock users out of 'onboard config set'.
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("Invalid settings in %s, using defaults: %v", settingsService.Path(), err)
		defaults := settingsService.GetDefaults()
		settings = &defaults
	}

	credentials := file.NewCredentialStore(settings.Workspace.TokenPath)
	flow := oauth.NewFlow(oauth.FlowOptions{
		ClientSecretPath: settings.Workspace.ClientSecretPath,
		Scopes:           domain.WorkspaceScopes,
		Timeout:          settings.Workspace.ConsentTimeoutDuration(),
		Out:              os.Stderr,
	})

	return &cli.Services{
		Settings: settingsService,
		Auth:     services.NewAuthService(credentials, flow),
		Sessions: memory.NewSessionStore(nil),
		Watcher:  watch.New(),
		Pool: func(ctx context.Context) (driving.DispatcherPool, error) {
			location, err := settings.Workspace.Location()
			if err != nil {
				return nil, fmt.Errorf("time zone: %w", err)
			}
			actions := services.NewActionClient(ctx, credentials, flow,
				google.NewWorkspaceFactory(google.Options{}),
				services.ActionClientOptions{
					CalendarID:   settings.Workspace.CalendarID,
					Location:     location,
					CreateDrafts: settings.Workspace.CreateDrafts,
				})
			return services.NewDispatcherPool(actions,
				gemini.NewFactory(gemini.Config{}), settings.LLM.Models), nil
		},
	}, nil
}
