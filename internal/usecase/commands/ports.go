package commands

import (
	"context"
	"time"

	"purchase-approval/internal/domain/identity"
)

// Email is one outbound notification. HTML is optional.
type Email struct {
	Topic   string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Notifier delivers emails in the background. Notify must not block the caller
// and a delivery failure never surfaces to it.
type Notifier interface {
	Notify(msg Email)
}

// IdentityProvider is the external OAuth provider.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (identity.Identity, error)
}

type SessionIssuer interface {
	GenerateToken(id identity.Identity) (string, error)
	TokenDuration() time.Duration
}
