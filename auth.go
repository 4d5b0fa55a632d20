package spotitab

import (
	"context"
	"fmt"
)

// TokenSource supplies a bearer token for a single request.
//
// The library does not refresh or cache tokens; obtaining and renewing them
// is the caller's responsibility. StaticToken covers the common case of a
// token acquired elsewhere.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed token string.
type StaticToken string

// Token implements TokenSource
func (s StaticToken) Token(ctx context.Context) (string, error) {
	if s == "" {
		return "", fmt.Errorf("empty token")
	}
	return string(s), nil
}

// Auth is the explicit token configuration passed to the client.
//
// App is the application bearer token used for read operations. User is the
// user OAuth token required by mutating operations (create playlist, add and
// remove tracks); it may be nil when only reads are performed.
type Auth struct {
	App  TokenSource
	User TokenSource
}

// NewAuth builds an Auth from raw token strings. An empty userToken leaves
// the user source unset, so mutating calls will fail with a clear error.
func NewAuth(appToken, userToken string) *Auth {
	auth := &Auth{App: StaticToken(appToken)}
	if userToken != "" {
		auth.User = StaticToken(userToken)
	}
	return auth
}

// user returns the user token source or an error when it was never configured
func (a *Auth) user() (TokenSource, error) {
	if a.User == nil {
		return nil, fmt.Errorf("user OAuth token is required for this operation")
	}
	return a.User, nil
}
