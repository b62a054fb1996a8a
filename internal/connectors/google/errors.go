package google

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"

	"github.com/onboardai/onboard/internal/logger"
)

// Common Google API errors.
var (
	// ErrUnauthorized indicates invalid or expired credentials.
	ErrUnauthorized = errors.New("google: unauthorised (invalid credentials)")

	// ErrForbidden indicates insufficient permissions.
	ErrForbidden = errors.New("google: forbidden (insufficient permissions)")

	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = errors.New("google: resource not found")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("google: rate limit exceeded")
)

func hasCode(err error, code int) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == code
}

// IsUnauthorized returns true if the error indicates invalid credentials.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) || hasCode(err, http.StatusUnauthorized)
}

// IsForbidden returns true if the error indicates insufficient permissions.
// A calendar the account cannot write to surfaces here.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden) || hasCode(err, http.StatusForbidden)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || hasCode(err, http.StatusNotFound)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited) || hasCode(err, http.StatusTooManyRequests)
}

// WrapError classifies a Google API error, keeping the server message.
// Errors that are not API errors are returned unchanged.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	var kind error
	switch gerr.Code {
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	case http.StatusForbidden:
		kind = ErrForbidden
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusTooManyRequests:
		kind = ErrRateLimited
	default:
		return err
	}
	if gerr.Message == "" {
		return kind
	}
	return fmt.Errorf("%w: %s", kind, gerr.Message)
}

// reportError classifies err from op and logs a hint for failures the user
// can act on. The classified error is returned.
func reportError(op string, err error) error {
	err = WrapError(err)
	fields := logger.With(logrus.Fields{"op": op})
	switch {
	case IsUnauthorized(err):
		logger.Error("%s: %v; run 'onboard auth login' to sign in again", op, err)
	case IsForbidden(err):
		fields.Warnf("access denied, check the granted scopes and workspace.calendar_id: %v", err)
	case IsNotFound(err):
		fields.Warnf("not found, check workspace.calendar_id: %v", err)
	case IsRateLimited(err):
		fields.Warnf("rate limited, try again shortly: %v", err)
	}
	return err
}
