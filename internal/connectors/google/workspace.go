package google

import (
	"context"
	"fmt"

	apicalendar "google.golang.org/api/calendar/v3"
	apigmail "google.golang.org/api/gmail/v1"

	"github.com/onboardai/onboard/internal/connectors/google/calendar"
	"github.com/onboardai/onboard/internal/connectors/google/gmail"
	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driven"
)

// gmailUser addresses the authenticated mailbox.
const gmailUser = "me"

// Ensure interfaces are implemented.
var (
	_ driven.WorkspaceClient        = (*WorkspaceClient)(nil)
	_ driven.WorkspaceClientFactory = (*WorkspaceFactory)(nil)
)

// WorkspaceClient performs Calendar and Gmail calls for one credential.
type WorkspaceClient struct {
	calendar *apicalendar.Service
	gmail    *apigmail.Service
}

// InsertEvent creates event in calendarID and returns the event ID.
func (c *WorkspaceClient) InsertEvent(ctx context.Context, calendarID string, event domain.CalendarEvent) (string, error) {
	created, err := c.calendar.Events.Insert(calendarID, calendar.ToAPIEvent(event)).Context(ctx).Do()
	if err != nil {
		return "", reportError("calendar.events.insert", err)
	}
	return created.Id, nil
}

// MailboxAddress returns the address of the authenticated mailbox.
func (c *WorkspaceClient) MailboxAddress(ctx context.Context) (string, error) {
	profile, err := c.gmail.Users.GetProfile(gmailUser).Context(ctx).Do()
	if err != nil {
		return "", reportError("gmail.users.getProfile", err)
	}
	return profile.EmailAddress, nil
}

// CreateDraft stores draft in the authenticated mailbox and returns its ID.
func (c *WorkspaceClient) CreateDraft(ctx context.Context, draft domain.MailDraft) (string, error) {
	created, err := c.gmail.Users.Drafts.Create(gmailUser, gmail.ToAPIDraft(draft)).Context(ctx).Do()
	if err != nil {
		return "", reportError("gmail.users.drafts.create", err)
	}
	return created.Id, nil
}

// WorkspaceFactory builds WorkspaceClients.
type WorkspaceFactory struct {
	opts Options
}

// NewWorkspaceFactory creates a factory. Zero Options target production.
func NewWorkspaceFactory(opts Options) *WorkspaceFactory {
	return &WorkspaceFactory{opts: opts}
}

// NewWorkspaceClient creates Calendar and Gmail services authorised by tokens.
// No request is made until the first call.
func (f *WorkspaceFactory) NewWorkspaceClient(ctx context.Context, tokens driven.TokenProvider) (driven.WorkspaceClient, error) {
	// The services outlive the caller's request; tokens are fetched per call
	ts := NewTokenSource(context.WithoutCancel(ctx), tokens)

	cal, err := NewCalendarService(ctx, ts, f.opts)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	gm, err := NewGmailService(ctx, ts, f.opts)
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}
	return &WorkspaceClient{calendar: cal, gmail: gm}, nil
}
