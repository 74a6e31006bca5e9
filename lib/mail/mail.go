package mail

import (
	"crypto/tls"
	"io"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Attachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

type Provider interface {
	Send(to, subject, body string, attachments ...Attachment) error
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewHandler(user, password, host, port, from string, tlsEnabled bool) {
	if from == "" {
		from = user
	}
	instance := impl{from: from}
	portNum, err := strconv.Atoi(port)
	if user == "" || host == "" || err != nil {
		log.Warn("mail sender is not configured, invitations will not be sent")
		Instance = instance
		return
	}
	dialer := gomail.NewDialer(host, portNum, user, password)
	dialer.SSL = tlsEnabled
	dialer.TLSConfig = &tls.Config{ServerName: host}
	instance.dialer = dialer
	Instance = instance
}

type impl struct {
	from   string
	dialer sender
}

func (i impl) Send(to, subject, body string, attachments ...Attachment) error {
	logger := log.WithField("recipient", to)
	if i.dialer == nil {
		logger.Warn("mail not sent, sender is not configured")
		return nil
	}
	if err := i.dialer.DialAndSend(BuildMessage(i.from, to, subject, body, attachments...)); err != nil {
		logger.WithError(err).Error("mail send failed")
		return errors.Wrap(err, "mail send failed")
	}
	logger.WithField("subject", subject).Info("mail sent")
	return nil
}

func BuildMessage(from, to, subject, body string, attachments ...Attachment) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Job Portal - "+subject)
	m.SetBody("text/plain", body)
	for _, attachment := range attachments {
		content := attachment.Content
		m.Attach(attachment.FileName,
			gomail.SetHeader(map[string][]string{"Content-Type": {attachment.ContentType}}),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}))
	}
	return m
}
