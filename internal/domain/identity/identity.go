package identity

import (
	"strings"

	"purchase-approval/internal/pkg/errs"
)

var (
	ErrMissingDisplayName = errs.Mark(errs.New("identity has no display name"), errs.ErrUnauthenticated)
	ErrMissingEmail       = errs.Mark(errs.New("identity has no email address"), errs.ErrUnauthenticated)
)

// Identity is the authenticated caller as reported by the identity provider.
// It is passed explicitly into every lifecycle operation.
type Identity struct {
	displayName string
	emails      []string
}

func New(displayName string, emails []string) (Identity, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return Identity{}, ErrMissingDisplayName
	}

	normalized := make([]string, 0, len(emails))
	for _, e := range emails {
		if e = NormalizeEmail(e); e != "" {
			normalized = append(normalized, e)
		}
	}
	if len(normalized) == 0 {
		return Identity{}, ErrMissingEmail
	}

	return Identity{displayName: name, emails: normalized}, nil
}

func (i Identity) DisplayName() string { return i.displayName }

// Emails returns a copy of the caller's addresses, primary first.
func (i Identity) Emails() []string {
	out := make([]string, len(i.emails))
	copy(out, i.emails)
	return out
}

// PrimaryEmail is the address used as requester email and as the approver key.
func (i Identity) PrimaryEmail() string {
	if len(i.emails) == 0 {
		return ""
	}
	return i.emails[0]
}

// IsZero reports whether the identity was never established.
func (i Identity) IsZero() bool {
	return i.displayName == "" && len(i.emails) == 0
}

// Validate re-checks an identity handed to a use case.
func (i Identity) Validate() error {
	if i.displayName == "" {
		return ErrMissingDisplayName
	}
	if i.PrimaryEmail() == "" {
		return ErrMissingEmail
	}
	return nil
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
