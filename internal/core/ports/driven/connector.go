package driven

import (
	"context"

	"github.com/onboardai/onboard/internal/core/domain"
)

// WorkspaceClient performs the Calendar and Gmail calls of the onboarding
// sequence. Every call is a single authenticated request.
type WorkspaceClient interface {
	// InsertEvent creates an event and returns its identifier.
	InsertEvent(ctx context.Context, calendarID string, event domain.CalendarEvent) (string, error)

	// MailboxAddress returns the email address of the authenticated mailbox.
	MailboxAddress(ctx context.Context) (string, error)

	// CreateDraft stores a draft in the authenticated mailbox and returns its identifier.
	CreateDraft(ctx context.Context, draft domain.MailDraft) (string, error)
}

// WorkspaceClientFactory builds a WorkspaceClient whose requests are
// authorised by the given TokenProvider.
type WorkspaceClientFactory interface {
	NewWorkspaceClient(ctx context.Context, tokens TokenProvider) (WorkspaceClient, error)
}
