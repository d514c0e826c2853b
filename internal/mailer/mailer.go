package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether enough of the transport is configured to send
// at all. Anything less is the valid "email disabled" state.
func (config Config) Enabled() bool {
	return config.Host != "" && config.From != ""
}

type Mailer struct {
	config Config
}

func New(config Config) *Mailer {
	return &Mailer{config: config}
}

func (mailer *Mailer) Send(ctx context.Context, to []string, subject string, htmlBody string) error {
	message := mail.NewMsg()
	if err := message.From(mailer.config.From); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := message.To(to...); err != nil {
		return fmt.Errorf("set recipients: %w", err)
	}
	message.Subject(subject)
	message.SetBodyString(mail.TypeTextHTML, htmlBody)

	options := []mail.Option{
		mail.WithPort(mailer.config.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if mailer.config.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(mailer.config.Username),
			mail.WithPassword(mailer.config.Password),
		)
	}

	client, err := mail.NewClient(mailer.config.Host, options...)
	if err != nil {
		return fmt.Errorf("init smtp client: %w", err)
	}
	defer client.Close()

	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
