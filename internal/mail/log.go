package mail

import (
	"log"
	netmail "net/mail"
	"strings"
)

// LogMailer prints messages instead of delivering them.
type LogMailer struct {
	from       netmail.Address
	subjPrefix string
}

var _ Mailer = (*LogMailer)(nil)

func NewLogMailer(from netmail.Address, appName string) *LogMailer {
	return &LogMailer{from: from, subjPrefix: subjectPrefix(appName)}
}

func (m *LogMailer) Send(messages ...Message) {
	for _, msg := range messages {
		if !msg.HasRecipients() {
			continue
		}
		log.Printf("[mail] from=%s to=%s subject=%q\n%s", m.from.String(), joinAddresses(msg.To), m.subjPrefix+msg.Subject, msg.Text)
	}
}

func joinAddresses(addrs []netmail.Address) string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.String())
	}
	return strings.Join(out, ", ")
}
