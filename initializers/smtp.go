package initializers

import (
	"job-portal-backend/config"
	"job-portal-backend/lib/mail"
	"job-portal-backend/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() {
	tlsEnabled := config.Conf.Smtp.TLSEnabled != nil && *config.Conf.Smtp.TLSEnabled
	smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.From, tlsEnabled)
	mail.NewHandler(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.From, tlsEnabled)
	if !smtp.Instance.IsConfigured() {
		log.Info("SMTP is not configured, e-mails are disabled")
	}
}
