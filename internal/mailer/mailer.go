package mailer

import (
	"log/slog"

	mail "github.com/wneessen/go-mail"
)

// Config carries the mail transport settings. Credentials and recipient are
// injected configuration, never literals in source; LoadEnv fills the
// credential from the environment.
type Config struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Sender    string `yaml:"sender"`
	Password  string `yaml:"-"`
	Recipient string `yaml:"recipient"`
	Subject   string `yaml:"subject"`
	Body      string `yaml:"body"`
}

// Mailer delivers an exported artifact. Implementations report failure as a
// boolean and never propagate transport errors.
type Mailer interface {
	Deliver(path string) bool
}

// SMTPMailer sends the artifact as an attachment over implicit TLS to the one
// configured recipient, with a fixed subject and body.
type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		cfg: cfg,
	}
}

// Deliver attaches the file at path and sends it. All failures are swallowed
// into a false return: the artifact on disk is the source of truth and the
// operator can fix the transport configuration and retry.
func (m *SMTPMailer) Deliver(path string) bool {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Sender); err != nil {
		slog.Error("Invalid sender address", "sender", m.cfg.Sender, "error", err)
		return false
	}
	if err := msg.To(m.cfg.Recipient); err != nil {
		slog.Error("Invalid recipient address", "recipient", m.cfg.Recipient, "error", err)
		return false
	}
	msg.Subject(m.cfg.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.cfg.Body)
	msg.AttachFile(path)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Sender),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		slog.Error("Mail client setup failed", "host", m.cfg.Host, "error", err)
		return false
	}

	if err := client.DialAndSend(msg); err != nil {
		slog.Error("Sending results email failed", "host", m.cfg.Host, "recipient", m.cfg.Recipient, "error", err)
		return false
	}

	slog.Info("Results emailed", "recipient", m.cfg.Recipient, "attachment", path)
	return true
}
