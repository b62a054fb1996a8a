package driving

import "context"

// ActionClient performs credentialed Workspace actions for external actors.
// Both actions return a human-readable outcome string and never an error:
// failures are folded into the outcome.
type ActionClient interface {
	// ScheduleInductionEvent books the induction meeting for employee.
	ScheduleInductionEvent(ctx context.Context, employee string) string

	// DraftWelcomeEmail prepares the welcome mail for employee.
	DraftWelcomeEmail(ctx context.Context, employee string) string

	// Authenticated reports whether a credential is held.
	Authenticated() bool

	// Authorize runs interactive consent regardless of the cached credential
	// and persists the result.
	Authorize(ctx context.Context) error

	// Reload re-reads the credential cache without interactive consent.
	Reload(ctx context.Context) error
}
