//go:build unit

package notify_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"purchase-approval/internal/infra/notify"
	"purchase-approval/internal/pkg/config"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSender(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cases := []struct {
		driver string
		want   any
	}{
		{driver: "", want: &notify.LogSender{}},
		{driver: "log", want: &notify.LogSender{}},
		{driver: "SMTP", want: &notify.SMTPSender{}},
	}
	for _, c := range cases {
		t.Run("driver "+c.driver, func(t *testing.T) {
			cfg := config.NewTestConfig()
			cfg.Mail.Driver = c.driver

			s, err := notify.NewSender(cfg, logger)

			require.NoError(t, err)
			assert.IsType(t, c.want, s)
		})
	}

	t.Run("unknown driver", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Mail.Driver = "carrier-pigeon"

		_, err := notify.NewSender(cfg, logger)

		assert.True(t, errs.Is(err, notify.ErrUnknownDriver))
	})
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	s := notify.NewLogSender(slog.New(slog.NewTextHandler(&buf, nil)))

	err := s.Send(context.Background(), approvedMail)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "to=alice@example.com")
	assert.Contains(t, buf.String(), `subject="Request Approved"`)
}

func TestSMTPSender_RejectsBadAddresses(t *testing.T) {
	cfg := config.NewTestConfig().Mail

	t.Run("recipient", func(t *testing.T) {
		s := notify.NewSMTPSender(cfg)

		err := s.Send(context.Background(), commands.Email{To: "not an address", Subject: "x", Text: "y"})

		assert.ErrorContains(t, err, "invalid recipient address")
	})

	t.Run("sender", func(t *testing.T) {
		bad := cfg
		bad.From = "@@"
		s := notify.NewSMTPSender(bad)

		err := s.Send(context.Background(), approvedMail)

		assert.ErrorContains(t, err, "invalid sender address")
	})
}
