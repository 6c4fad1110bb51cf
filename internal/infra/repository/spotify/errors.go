package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Error kinds. Every error returned by SpotifyClient matches exactly one of
// these with errors.Is; the concrete types carry the details.
var (
	ErrAuth    = errors.New("spotify: authentication failed")
	ErrAPI     = errors.New("spotify: api request failed")
	ErrTimeout = errors.New("spotify: request timed out")

	ErrMissingCredentials = errors.New("spotify: client id and client secret are required")
)

// AuthError is returned when the client credentials grant fails.
// StatusCode is zero when the token endpoint answered 2xx with an unusable body
// or could not be reached at all.
type AuthError struct {
	StatusCode int
	Status     string
	Err        error
}

func newAuthError(err error) *AuthError {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		return &AuthError{
			StatusCode: retrieveErr.Response.StatusCode,
			Status:     statusText(retrieveErr.Response),
			Err:        err,
		}
	}

	return &AuthError{Err: err}
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("spotify: failed to get access token: %d %s", e.StatusCode, e.Status)
	}

	return fmt.Sprintf("spotify: failed to get access token: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Is(target error) bool { return target == ErrAuth }

// APIError is returned when a resource request fails for any reason other
// than its timeout. StatusCode is zero for transport failures and for
// responses that did not have the expected shape.
type APIError struct {
	StatusCode int
	Status     string
	Path       string
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 && e.Err == nil {
		return fmt.Sprintf("spotify: api error on %s: %d %s", e.Path, e.StatusCode, e.Status)
	}

	return fmt.Sprintf("spotify: api error on %s: %v", e.Path, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) Is(target error) bool { return target == ErrAPI }

// TimeoutError is returned when a resource request did not complete within
// its timeout.
type TimeoutError struct {
	Path    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("spotify: GET %s timed out after %s", e.Path, e.Timeout)
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout || target == context.DeadlineExceeded
}

// statusText returns the reason phrase of a response, e.g. "Not Found".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}

	return text
}
