package domain

import "fmt"

// Fixed user-visible messages.
const (
	// MsgAuthFailed is returned by Workspace operations when no credential is held.
	MsgAuthFailed = "❌ Auth Failed"

	// MsgAPIKeyMissing is returned by the responder when no model is held.
	MsgAPIKeyMissing = "⚠️ API Key Missing or Invalid."

	// MsgOnboardingComplete is returned by every onboarding run.
	MsgOnboardingComplete = "Onboarding Sequence Completed Successfully."

	// MsgResponseGenerated is the trace detail recorded after a policy answer.
	MsgResponseGenerated = "Response Generated"

	// MsgEnterName is shown when onboarding is triggered without a name.
	MsgEnterName = "Enter a name."
)

// EventCreatedOutcome formats a successful calendar insert.
func EventCreatedOutcome(eventID string) string {
	return fmt.Sprintf("✅ Meeting ID: %s (Created)", eventID)
}

// DraftCreatedOutcome formats a successful welcome-mail step.
func DraftCreatedOutcome(employee, sender string) string {
	return fmt.Sprintf("✅ Draft created for %s (Sender: %s)", employee, sender)
}

// ActionErrorOutcome formats a failed Workspace call.
func ActionErrorOutcome(err error) string {
	return fmt.Sprintf("❌ Error: %v", err)
}

// AnswerErrorOutcome formats a failed completion call.
func AnswerErrorOutcome(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
