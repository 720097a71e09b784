package utils

import (
	"bytes"

	"gopkg.in/gomail.v2"

	"stayease-backend/config"
)

type EmailData struct {
	Subject string
	Text    string
	Email   string
}

func SendEmail(data *EmailData, cfg *config.Config) error {
	var from = cfg.EmailFrom
	var to = data.Email

	var body bytes.Buffer
	body.WriteString(data.Text)

	m := gomail.NewMessage()

	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", data.Subject)
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	return d.DialAndSend(m)
}
