package google

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Options overrides API transport settings. Zero values use Google's
// production endpoints and http.DefaultTransport.
type Options struct {
	// Endpoint replaces the API base URL for both services.
	Endpoint string
	// Transport is the base round tripper beneath the OAuth transport.
	Transport http.RoundTripper
}

// authorisedClient returns an HTTP client that sets the bearer token from
// ts on every request.
func authorisedClient(ts oauth2.TokenSource, base http.RoundTripper) *http.Client {
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: ts,
			Base:   base,
		},
	}
}

func (o Options) clientOptions(ts oauth2.TokenSource) []option.ClientOption {
	opts := []option.ClientOption{option.WithHTTPClient(authorisedClient(ts, o.Transport))}
	if o.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(o.Endpoint))
	}
	return opts
}

// NewCalendarService creates a Google Calendar API service using the provided TokenSource.
func NewCalendarService(ctx context.Context, ts oauth2.TokenSource, o Options) (*calendar.Service, error) {
	return calendar.NewService(ctx, o.clientOptions(ts)...)
}

// NewGmailService creates a Gmail API service using the provided TokenSource.
func NewGmailService(ctx context.Context, ts oauth2.TokenSource, o Options) (*gmail.Service, error) {
	return gmail.NewService(ctx, o.clientOptions(ts)...)
}
