package notify

import (
	"context"

	"purchase-approval/internal/pkg/config"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/internal/usecase/commands"

	"github.com/wneessen/go-mail"
)

type SMTPSender struct {
	cfg config.MailConfig
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, msg commands.Email) error {
	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return errs.Wrap(err, "create smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return errs.Wrap(err, "send email")
	}
	return nil
}

func (s *SMTPSender) buildMessage(msg commands.Email) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return nil, errs.Wrap(err, "invalid sender address")
	}
	if err := m.To(msg.To); err != nil {
		return nil, errs.Wrap(err, "invalid recipient address")
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{mail.WithPort(s.cfg.Port)}
	if s.cfg.Username == "" {
		// local relays without credentials may not offer STARTTLS
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	} else {
		opts = append(opts,
			mail.WithTLSPolicy(mail.TLSMandatory),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	return opts
}
