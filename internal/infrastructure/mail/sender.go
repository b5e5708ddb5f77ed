package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/jhoicas/bill-reminder-api/internal/application/usecase"
	"github.com/jhoicas/bill-reminder-api/pkg/config"
	"github.com/jhoicas/bill-reminder-api/pkg/logger"
)

var _ usecase.Mailer = (*Sender)(nil)

// Sender adaptador del puerto Mailer sobre un relay SMTP.
// El envío es síncrono y sin reintentos: un relay caído se propaga como error.
type Sender struct {
	cfg config.MailConfig
	log *logger.Logger
}

// NewSender construye el adaptador.
func NewSender(cfg config.MailConfig, log *logger.Logger) *Sender {
	return &Sender{cfg: cfg, log: log}
}

// Send despacha un correo de texto plano al destinatario indicado.
// Con UseTLS negocia STARTTLS (p.ej. Gmail en el puerto 587).
func (s *Sender) Send(_ context.Context, to, subject, body string) error {
	e := email.NewEmail()
	e.From = s.cfg.Username
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	addr := s.cfg.Addr()
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Server)

	var err error
	if s.cfg.UseTLS {
		err = e.SendWithStartTLS(addr, auth, &tls.Config{ServerName: s.cfg.Server})
	} else {
		err = e.Send(addr, auth)
	}
	if err != nil {
		s.log.Error().Err(err).Str("to", to).Msg("envío de correo fallido")
		return fmt.Errorf("enviar correo: %w", err)
	}

	s.log.Info().Str("to", to).Str("subject", subject).Msg("correo enviado")
	return nil
}
