package mailer

import (
	"context"

	"github.com/wb-go/wbf/logger"
)

// LogMailer records the email it would have sent. Actual dispatch is not
// wired to a provider yet; the invitation flow only needs the intent logged.
type LogMailer struct {
	logger logger.Logger
}

func NewLogMailer(logger logger.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendInvitation(ctx context.Context, email, link string) error {
	m.logger.Info("invitation email (stub, not sent)",
		logger.String("to", email),
		logger.String("link", link),
	)
	return nil
}
