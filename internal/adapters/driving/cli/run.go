package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/onboardai/onboard/internal/core/domain"
)

var runFormat string

var runCmd = &cobra.Command{
	Use:   "run <employee name>",
	Short: "Run the onboarding sequence for a new employee",
	Long: `Schedule the induction meeting and prepare the welcome mail for the
named employee, then print the trace.

Example:
  onboard run Asha Rao
  onboard run --format json Asha Rao`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOnboarding,
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask an HR policy question",
	Long: `Answer an HR policy question with Gemini.

The key comes from llm.api_key or $GEMINI_API_KEY; if neither is set and
stdin is a terminal, you are prompted for it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(askCmd)
}

type runReport struct {
	Employee string              `json:"employee" yaml:"employee"`
	Status   string              `json:"status" yaml:"status"`
	Trace    []domain.TraceEntry `json:"trace" yaml:"trace"`
}

func runOnboarding(cmd *cobra.Command, args []string) error {
	employee := strings.TrimSpace(strings.Join(args, " "))
	if employee == "" {
		return errors.New(domain.MsgEnterName)
	}

	format := strings.ToLower(runFormat)
	switch format {
	case "text", "json", "yaml", "yml":
	default:
		return fmt.Errorf("unknown format %q", runFormat)
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}
	pool, err := dispatcherPool(cmd.Context())
	if err != nil {
		return err
	}

	sess := domain.NewSession(uuid.NewString(), nil)
	d := pool.ForKey(cmd.Context(), settings.LLM.APIKey, sess)
	status := d.RunOnboardingSequence(cmd.Context(), sess, employee)

	report := runReport{Employee: employee, Status: status, Trace: sess.Trace()}
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		cmd.Println(string(data))
	case "yaml", "yml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		cmd.Print(string(data))
	default:
		for _, e := range report.Trace {
			cmd.Println(traceLine(e))
		}
		cmd.Println()
		cmd.Println(headingStyle.Render(status))
	}
	return nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return errors.New("missing question")
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}
	apiKey := settings.LLM.APIKey
	if apiKey == "" {
		apiKey = readSecret(cmd.ErrOrStderr(), "Gemini API key: ")
	}

	pool, err := dispatcherPool(cmd.Context())
	if err != nil {
		return err
	}

	sess := domain.NewSession(uuid.NewString(), nil)
	answer := pool.ForKey(cmd.Context(), apiKey, sess).Ask(cmd.Context(), sess, question)
	cmd.Println(answer)
	return nil
}

// currentSettings loads settings through the settings service.
func currentSettings() (*domain.AppSettings, error) {
	if services == nil || services.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	settings, err := services.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}
