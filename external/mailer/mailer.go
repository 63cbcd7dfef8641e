// Package mailer delivers templated alert emails over SMTP.
package mailer

import (
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// AlertEmailData carries everything an alert email shows: the listing
// details, the computed distance and the subscriber's monitored-location
// label.
type AlertEmailData struct {
	ListingName string
	Address     string
	Phone       string
	DistanceKm  float64
	Label       string

	// Language selects the email locale, en or fr
	Language string
}

// Mailer - notification dispatcher consumed by the alert engine
type Mailer interface {
	SendListingAlert(recipient string, data AlertEmailData) error
}

type SMTPMailer struct {
	dialer    *gomail.Dialer
	fromName  string
	fromEmail string
}

// NewSMTPMailer builds a mailer from the smtp.* configuration keys
func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(
			viper.GetString("smtp.host"),
			viper.GetInt("smtp.port"),
			viper.GetString("smtp.username"),
			viper.GetString("smtp.password"),
		),
		fromName:  viper.GetString("smtp.from.name"),
		fromEmail: viper.GetString("smtp.from.email"),
	}
}

func (m *SMTPMailer) SendListingAlert(recipient string, data AlertEmailData) error {
	subject, body := renderAlertEmail(data)

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.fromEmail, m.fromName))
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}
