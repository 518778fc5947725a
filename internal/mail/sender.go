// Package mail sends the verification and password-update mails over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	UseTLS   bool

	// Links in the mail body point at these endpoints with the token
	// appended as a query parameter.
	VerifyURL         string
	PasswordUpdateURL string
}

// SMTPSender implements service.MailSender over plain SMTP.
type SMTPSender struct {
	cfg Config
	log *zap.Logger
}

func NewSMTPSender(cfg Config, log *zap.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, log: log}
}

func (s *SMTPSender) SendVerificationMail(ctx context.Context, email, verifyToken string) error {
	link := fmt.Sprintf("%s?token=%s", s.cfg.VerifyURL, verifyToken)
	body := "Follow the link to verify your email address:\r\n" + link

	if err := s.send(ctx, email, "Email verification", body); err != nil {
		return fmt.Errorf("send verification mail: %w", err)
	}

	s.log.Info("verification mail sent", zap.String("email", email))

	return nil
}

func (s *SMTPSender) SendPasswordUpdateMail(ctx context.Context, email, updateToken string) error {
	link := fmt.Sprintf("%s?token=%s", s.cfg.PasswordUpdateURL, updateToken)
	body := "Follow the link to set a new password:\r\n" + link

	if err := s.send(ctx, email, "Password update", body); err != nil {
		return fmt.Errorf("send password update mail: %w", err)
	}

	s.log.Info("password update mail sent", zap.String("email", email))

	return nil
}

func (s *SMTPSender) send(_ context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	if !s.cfg.UseTLS {
		return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
	}

	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
		return err
	}
	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}
