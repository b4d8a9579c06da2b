//go:build unit || e2e

package builder

import (
	"testing"

	"purchase-approval/internal/domain/identity"

	"github.com/stretchr/testify/require"
)

const (
	DefaultRequesterName  = "Alice Requester"
	DefaultRequesterEmail = "alice@example.com"
	DefaultApproverName   = "Bob Approver"
	DefaultApproverEmail  = "bob@example.com"
)

func NewIdentity(t *testing.T, displayName string, emails ...string) identity.Identity {
	t.Helper()
	id, err := identity.New(displayName, emails)
	require.NoError(t, err)
	return id
}

func Requester(t *testing.T) identity.Identity {
	t.Helper()
	return NewIdentity(t, DefaultRequesterName, DefaultRequesterEmail)
}

func Approver(t *testing.T) identity.Identity {
	t.Helper()
	return NewIdentity(t, DefaultApproverName, DefaultApproverEmail)
}
