package commands

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"time"

	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/pkg/errs"
)

var (
	ErrStateMismatch   = errs.Mark(errs.New("oauth state mismatch"), errs.ErrUnauthenticated)
	ErrMissingCode     = errs.Mark(errs.New("missing authorization code"), errs.ErrUnauthenticated)
	ErrTokenGeneration = errs.New("session token generation failed")
)

type LoginRedirect struct {
	State string
	URL   string
}

type LoginResult struct {
	Identity     identity.Identity
	SessionToken string
	SessionTTL   time.Duration
}

type AuthCommands interface {
	// BeginLogin creates the anti-forgery state and the provider consent URL.
	BeginLogin() (*LoginRedirect, error)
	// CompleteLogin verifies the state, exchanges the code and issues a session token.
	CompleteLogin(ctx context.Context, expectedState, state, code string) (*LoginResult, error)
	Logout(ctx context.Context, caller identity.Identity)
}

type authCommandsImpl struct {
	provider IdentityProvider
	sessions SessionIssuer
	notifier Notifier
}

func NewAuthCommands(provider IdentityProvider, sessions SessionIssuer, notifier Notifier) AuthCommands {
	return &authCommandsImpl{
		provider: provider,
		sessions: sessions,
		notifier: notifier,
	}
}

func (a *authCommandsImpl) BeginLogin() (*LoginRedirect, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, errs.Wrap(err, "generate oauth state")
	}
	state := base64.RawURLEncoding.EncodeToString(buf)
	return &LoginRedirect{State: state, URL: a.provider.AuthCodeURL(state)}, nil
}

func (a *authCommandsImpl) CompleteLogin(ctx context.Context, expectedState, state, code string) (*LoginResult, error) {
	if expectedState == "" || subtle.ConstantTimeCompare([]byte(state), []byte(expectedState)) != 1 {
		return nil, ErrStateMismatch
	}
	if code == "" {
		return nil, ErrMissingCode
	}

	id, err := a.provider.Exchange(ctx, code)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "identity provider exchange"), errs.ErrUnauthenticated)
	}

	token, err := a.sessions.GenerateToken(id)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	a.notifier.Notify(loginEmail(id))
	return &LoginResult{Identity: id, SessionToken: token, SessionTTL: a.sessions.TokenDuration()}, nil
}

func (a *authCommandsImpl) Logout(_ context.Context, caller identity.Identity) {
	if caller.Validate() != nil {
		return
	}
	a.notifier.Notify(logoutEmail(caller))
}
