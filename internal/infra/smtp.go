package infra

import (
	"fmt"
	"net/smtp"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for operational alert mail.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
	to       string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		to:       cfg.AlertEmail,
	}
}

// SendAlerta sends a plain-text operational alert (stock agotado,
// discrepancia de inventario) to the configured address.
func (m *Mailer) SendAlerta(subject, body string) error {
	if m.host == "" || m.to == "" {
		return fmt.Errorf("mailer: SMTP no configurado")
	}
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{m.to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
