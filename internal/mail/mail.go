// Package mail delivers notification emails. Delivery is fire-and-forget:
// failures are logged and never reach the request that triggered them.
package mail

import (
	"fmt"
	netmail "net/mail"
	"sync"

	"github.com/linskybing/bootcamp-go/internal/config"
)

type Message struct {
	To      []netmail.Address
	Subject string
	Text    string
	HTML    string
}

func (m Message) HasRecipients() bool { return len(m.To) > 0 }

type Mailer interface {
	Send(messages ...Message)
}

// FromConfig picks sendgrid when an API key is configured and the log mailer
// otherwise.
func FromConfig() Mailer {
	from := netmail.Address{Name: config.MailFromName, Address: config.MailFrom}
	if config.SendgridAPIKey != "" {
		return NewSendgridMailer(config.SendgridAPIKey, from, config.MailFromName)
	}
	return NewLogMailer(from, config.MailFromName)
}

func subjectPrefix(appName string) string {
	if appName == "" {
		return ""
	}
	return fmt.Sprintf("[%s] ", appName)
}

// Recorder keeps messages in memory and sends synchronously. Used in tests.
type Recorder struct {
	mu   sync.Mutex
	sent []Message
}

func (r *Recorder) Send(messages ...Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range messages {
		if m.HasRecipients() {
			r.sent = append(r.sent, m)
		}
	}
}

func (r *Recorder) Sent() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.sent...)
}
