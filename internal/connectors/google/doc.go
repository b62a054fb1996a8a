// Package google provides the Workspace connector used by the action client.
//
// It contains:
//   - TokenSource adapter to bridge the driven TokenProvider to oauth2.TokenSource
//   - Service factories for the Calendar and Gmail API clients
//   - Error classification for common Google API errors (401, 403, 404, 429)
//   - WorkspaceClient, the driven.WorkspaceClient over both services
//
// # Usage
//
//	factory := google.NewWorkspaceFactory(google.Options{})
//	client, err := factory.NewWorkspaceClient(ctx, tokenProvider)
//	id, err := client.InsertEvent(ctx, "primary", event)
//
// # OAuth2 Scopes
//
//   - https://www.googleapis.com/auth/calendar (sensitive)
//   - https://www.googleapis.com/auth/gmail.compose (restricted)
//
// For user-created internal apps, restricted scopes don't require verification.
package google
