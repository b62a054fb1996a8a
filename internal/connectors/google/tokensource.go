package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/onboardai/onboard/internal/core/ports/driven"
)

// providerTokens asks a driven.TokenProvider for the access token on every
// request. The provider refreshes and persists the credential itself, so the
// oauth2 transport must not cache tokens of its own.
type providerTokens struct {
	ctx      context.Context
	provider driven.TokenProvider
}

// NewTokenSource returns an oauth2.TokenSource backed by provider.
func NewTokenSource(ctx context.Context, provider driven.TokenProvider) oauth2.TokenSource {
	return providerTokens{ctx: ctx, provider: provider}
}

func (p providerTokens) Token() (*oauth2.Token, error) {
	access, err := p.provider.GetToken(p.ctx)
	if err != nil {
		return nil, fmt.Errorf("workspace token: %w", err)
	}
	return &oauth2.Token{AccessToken: access, TokenType: "Bearer"}, nil
}
