package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driven"
	"github.com/onboardai/onboard/internal/core/ports/driving"
	"github.com/onboardai/onboard/internal/logger"
)

// Ensure ActionClient implements the interfaces.
var (
	_ driving.ActionClient = (*ActionClient)(nil)
	_ driven.TokenProvider = (*ActionClient)(nil)
)

// ActionClientOptions configures the Workspace actions.
type ActionClientOptions struct {
	// CalendarID receives induction events. Defaults to "primary".
	CalendarID string
	// Location is the zone of the induction slot. Defaults to Asia/Kolkata, or
	// time.Local if the zone database is unavailable.
	Location *time.Location
	// CreateDrafts also stores a Gmail draft in the welcome-mail step.
	CreateDrafts bool
	// Now is the clock used to date induction events. Defaults to time.Now.
	Now func() time.Time
}

// ActionClient holds the Workspace credential and performs the calendar and
// mail steps of onboarding. It is also the TokenProvider of its own
// Workspace client, so an expired credential is refreshed and re-persisted
// in place before the next request.
type ActionClient struct {
	store   driven.CredentialStore
	flow    driven.ConsentFlow
	factory driven.WorkspaceClientFactory
	opts    ActionClientOptions

	mu     sync.Mutex
	cred   *domain.Credential
	client driven.WorkspaceClient
}

// NewActionClient creates the action client and bootstraps its credential:
//
//  1. a valid cached credential is used as is;
//  2. an expired refreshable one is refreshed and persisted;
//  3. otherwise interactive consent runs when a client secret is available;
//  4. otherwise no credential is held and both actions fail closed.
//
// flow may be nil, in which case only a valid cache is usable.
func NewActionClient(
	ctx context.Context,
	store driven.CredentialStore,
	flow driven.ConsentFlow,
	factory driven.WorkspaceClientFactory,
	opts ActionClientOptions,
) *ActionClient {
	if opts.CalendarID == "" {
		opts.CalendarID = domain.DefaultCalendarID
	}
	if opts.Location == nil {
		loc, err := time.LoadLocation(domain.DefaultTimeZone)
		if err != nil {
			loc = time.Local
		}
		opts.Location = loc
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	c := &ActionClient{
		store:   store,
		flow:    flow,
		factory: factory,
		opts:    opts,
	}
	c.bootstrap(ctx)
	return c
}

func (c *ActionClient) bootstrap(ctx context.Context) {
	logger.Section("Workspace credential")

	cached, err := c.store.Load(ctx)
	switch {
	case err == nil:
		logger.Debug("loaded cached credential from %s", c.store.Path())
	case errors.Is(err, domain.ErrCredentialNotCached):
		logger.Debug("no cached credential at %s", c.store.Path())
	default:
		logger.Warn("read credential cache: %v", err)
	}

	if cached.IsValid() {
		c.setCredential(cached)
		return
	}

	if cached.CanRefresh() && c.flow != nil {
		refreshed, err := c.refreshAndPersist(ctx, *cached)
		if err == nil {
			c.setCredential(refreshed)
			return
		}
		logger.Warn("refresh cached credential: %v", err)
	}

	if c.flow == nil || !c.flow.CanAuthorize() {
		logger.Info("%v, Workspace actions disabled", domain.ErrClientSecretMissing)
		return
	}

	if err := c.Authorize(ctx); err != nil {
		logger.Warn("interactive consent: %v", err)
	}
}

// refreshAndPersist refreshes cred and writes the result to the cache.
func (c *ActionClient) refreshAndPersist(ctx context.Context, cred domain.Credential) (*domain.Credential, error) {
	if c.flow == nil {
		return nil, domain.ErrNotRefreshable
	}
	refreshed, err := c.flow.Refresh(ctx, cred)
	if err != nil {
		return nil, err
	}
	if err := c.store.Save(ctx, *refreshed); err != nil {
		logger.Warn("persist refreshed credential: %v", err)
	}
	logger.Debug("credential refreshed, expires %s", refreshed.Expiry.Format(time.RFC3339))
	return refreshed, nil
}

func (c *ActionClient) setCredential(cred *domain.Credential) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cred = cred
}

// Authorize runs interactive consent and persists the obtained credential.
func (c *ActionClient) Authorize(ctx context.Context) error {
	if c.flow == nil {
		return domain.ErrClientSecretMissing
	}
	cred, err := c.flow.Authorize(ctx)
	if err != nil {
		return err
	}
	if err := c.store.Save(ctx, *cred); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	c.setCredential(cred)
	logger.Info("Workspace credential obtained")
	return nil
}

// Reload re-reads the credential cache. A cached credential that is valid,
// or expired but refreshable, replaces the held one. Interactive consent is
// never started.
func (c *ActionClient) Reload(ctx context.Context) error {
	cached, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	if cached.IsValid() {
		c.setCredential(cached)
		logger.Debug("credential reloaded from %s", c.store.Path())
		return nil
	}
	if !cached.CanRefresh() {
		return domain.ErrNotRefreshable
	}
	refreshed, err := c.refreshAndPersist(ctx, *cached)
	if err != nil {
		return err
	}
	c.setCredential(refreshed)
	return nil
}

// Authenticated reports whether a credential is held.
func (c *ActionClient) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cred != nil
}

// IsAuthenticated implements driven.TokenProvider.
func (c *ActionClient) IsAuthenticated() bool {
	return c.Authenticated()
}

// GetToken returns the current access token, refreshing and persisting the
// credential first if it has expired.
func (c *ActionClient) GetToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cred == nil {
		return "", domain.ErrNoCredential
	}
	if !c.cred.IsExpired() {
		return c.cred.AccessToken, nil
	}
	if !c.cred.NeedsRefresh() {
		return "", fmt.Errorf("credential expired: %w", domain.ErrNotRefreshable)
	}

	refreshed, err := c.refreshAndPersist(ctx, *c.cred)
	if err != nil {
		return "", fmt.Errorf("refresh credential: %w", err)
	}
	c.cred = refreshed
	return refreshed.AccessToken, nil
}

// workspace returns the Workspace client, creating it on first use.
func (c *ActionClient) workspace(ctx context.Context) (driven.WorkspaceClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}
	client, err := c.factory.NewWorkspaceClient(ctx, c)
	if err != nil {
		return nil, err
	}
	c.client = client
	return client, nil
}

// ScheduleInductionEvent inserts the induction meeting for employee into the
// configured calendar, tomorrow 10:00 to 11:00 in the configured zone.
func (c *ActionClient) ScheduleInductionEvent(ctx context.Context, employee string) string {
	if !c.Authenticated() {
		return domain.MsgAuthFailed
	}

	client, err := c.workspace(ctx)
	if err != nil {
		return domain.ActionErrorOutcome(err)
	}

	event := domain.NewInductionEvent(employee, c.opts.Now(), c.opts.Location)
	id, err := client.InsertEvent(ctx, c.opts.CalendarID, event)
	if err != nil {
		logger.Warn("insert induction event for %s: %v", employee, err)
		return domain.ActionErrorOutcome(err)
	}

	logger.Debug("induction event %s created on %s", id, c.opts.CalendarID)
	return domain.EventCreatedOutcome(id)
}

// DraftWelcomeEmail reads the authenticated mailbox address and, when draft
// creation is enabled, stores the welcome mail as a Gmail draft.
func (c *ActionClient) DraftWelcomeEmail(ctx context.Context, employee string) string {
	if !c.Authenticated() {
		return domain.MsgAuthFailed
	}

	client, err := c.workspace(ctx)
	if err != nil {
		return domain.ActionErrorOutcome(err)
	}

	sender, err := client.MailboxAddress(ctx)
	if err != nil {
		logger.Warn("read mailbox profile: %v", err)
		return domain.ActionErrorOutcome(err)
	}

	if c.opts.CreateDrafts {
		id, err := client.CreateDraft(ctx, domain.NewWelcomeDraft(employee, sender))
		if err != nil {
			logger.Warn("create welcome draft for %s: %v", employee, err)
			return domain.ActionErrorOutcome(err)
		}
		logger.Debug("welcome draft %s created", id)
	}

	return domain.DraftCreatedOutcome(employee, sender)
}
