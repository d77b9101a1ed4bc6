package utils

import (
	"log"

	"github.com/wneessen/go-mail"
)

// SMTPConfig porte les identifiants du fournisseur d'e-mail transactionnel.
// Un Host vide signifie que l'envoi n'est pas configuré (mode démo).
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer envoie les e-mails de confirmation via SMTP
type Mailer struct {
	cfg SMTPConfig
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Configured indique si un fournisseur d'e-mail est disponible
func (m *Mailer) Configured() bool {
	return m.cfg.Host != ""
}

// Send envoie un e-mail avec corps HTML et alternative texte
func (m *Mailer) Send(to, subject, htmlBody, textBody string) error {
	msg := mail.NewMsg()

	if err := msg.From(m.cfg.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, textBody)
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	return client.DialAndSend(msg)
}
