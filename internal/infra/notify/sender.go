package notify

import (
	"context"
	"log/slog"
	"strings"

	"purchase-approval/internal/pkg/config"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/internal/usecase/commands"
)

const (
	DriverSMTP = "smtp"
	DriverLog  = "log"
)

var ErrUnknownDriver = errs.New("unknown mail driver")

type Sender interface {
	Send(ctx context.Context, msg commands.Email) error
}

func NewSender(cfg config.Config, logger *slog.Logger) (Sender, error) {
	switch strings.ToLower(cfg.Mail.Driver) {
	case DriverSMTP:
		return NewSMTPSender(cfg.Mail), nil
	case DriverLog, "":
		return NewLogSender(logger), nil
	default:
		return nil, errs.Mark(errs.Newf("mail driver %q", cfg.Mail.Driver), ErrUnknownDriver)
	}
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg commands.Email) error {
	s.logger.InfoContext(ctx, "email",
		slog.String("topic", msg.Topic),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.Text),
		slog.Bool("html", msg.HTML != ""))
	return nil
}
