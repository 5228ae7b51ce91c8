package mailer

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/vooz/donation-processor/internal/domain/entity"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/notification"
	"github.com/vooz/donation-processor/internal/infrastructure/config"
)

const (
	subjectAdminSubmission = "Новая заявка на пожертвование"
	subjectDonorThanks     = "Спасибо, что помогаете"
	subjectPaymentReceived = "Платёж получен"
)

//go:embed templates/*.html
var templateFS embed.FS

var _ notification.Sender = (*SMTPMailer)(nil)

// sendFunc matches smtp.SendMail
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer delivers notification events as HTML mail
type SMTPMailer struct {
	addr       string
	auth       smtp.Auth
	from       string
	adminEmail string
	templates  *template.Template
	send       sendFunc
	logger     coreport.Logger
}

// NewSMTPMailer creates a mailer from the mail settings
func NewSMTPMailer(conf config.MailConfig, logger coreport.Logger) (*SMTPMailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}

	var auth smtp.Auth
	if conf.Username != "" && conf.Password != "" {
		auth = smtp.PlainAuth("", conf.Username, conf.Password, conf.Host)
	}

	return &SMTPMailer{
		addr:       net.JoinHostPort(conf.Host, strconv.Itoa(conf.Port)),
		auth:       auth,
		from:       conf.From,
		adminEmail: conf.AdminEmail,
		templates:  tmpl,
		send:       smtp.SendMail,
		logger:     logger,
	}, nil
}

// templateData is what every mail template can render
type templateData struct {
	ID            uint64
	Amount        string
	PaymentType   string
	DonorName     string
	Email         string
	Comment       string
	SubmittedAt   string
	TransactionID int64
	Recurrent     bool
}

func newTemplateData(event notification.Event) templateData {
	d := event.Donation
	txID := event.TransactionID
	if txID == 0 {
		txID = d.TransactionID
	}

	return templateData{
		ID:            d.ID,
		Amount:        entity.FormatAmount(d.Amount),
		PaymentType:   d.Cadence.Label(),
		DonorName:     d.DonorName,
		Email:         d.Email,
		Comment:       d.Comment,
		SubmittedAt:   entity.FormatSubmittedAt(d.SubmittedAt),
		TransactionID: txID,
		Recurrent:     d.IsRecurrent(),
	}
}

// Send delivers the mails that belong to the event
func (m *SMTPMailer) Send(ctx context.Context, event notification.Event) error {
	data := newTemplateData(event)

	switch event.Type {
	case notification.EventDonationSubmitted:
		return errors.Join(
			m.deliver(ctx, m.adminEmail, subjectAdminSubmission, "admin_submission.html", data),
			m.deliver(ctx, data.Email, subjectDonorThanks, "donor_thanks.html", data),
		)
	case notification.EventPaymentSucceeded:
		return m.deliver(ctx, data.Email, subjectPaymentReceived, "payment_received.html", data)
	case notification.EventPaymentRejected:
		m.logger.Info("Payment rejected, donor is not mailed", map[string]any{
			"donation_id":    data.ID,
			"transaction_id": data.TransactionID,
			"reason":         event.Reason,
		})
		return nil
	default:
		return fmt.Errorf("unsupported notification event: %s", event.Type)
	}
}

func (m *SMTPMailer) deliver(ctx context.Context, to, subject, templateName string, data templateData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if to == "" {
		return fmt.Errorf("mail %q has no recipient", subject)
	}

	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", templateName, err)
	}

	msg := buildMessage(m.from, to, subject, body.Bytes())
	if err := m.send(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send %q to %s: %w", subject, to, err)
	}

	m.logger.Info("Email sent", map[string]any{
		"to":          to,
		"subject":     subject,
		"donation_id": data.ID,
	})
	return nil
}

func buildMessage(from, to, subject string, body []byte) []byte {
	var msg bytes.Buffer
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + mime.BEncoding.Encode("UTF-8", subject) + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.Write(bytes.ReplaceAll(body, []byte("\n"), []byte("\r\n")))
	return msg.Bytes()
}

// LogSender records events instead of mailing them; used when mail is off
type LogSender struct {
	logger coreport.Logger
}

var _ notification.Sender = (*LogSender)(nil)

// NewLogSender creates a log-only sender
func NewLogSender(logger coreport.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the event
func (s *LogSender) Send(_ context.Context, event notification.Event) error {
	s.logger.Info("Notification (mail disabled)", map[string]any{
		"event":          string(event.Type),
		"donation_id":    event.Donation.ID,
		"email":          event.Donation.Email,
		"amount":         entity.FormatAmount(event.Donation.Amount),
		"transaction_id": event.TransactionID,
		"reason":         strings.TrimSpace(event.Reason),
	})
	return nil
}
