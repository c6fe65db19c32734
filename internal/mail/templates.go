package mail

import (
	"fmt"
	netmail "net/mail"

	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
)

func ApplicationReceived(app application.Application) Message {
	return Message{
		To:      []netmail.Address{{Name: app.FullName, Address: app.Email}},
		Subject: "We received your application",
		Text: fmt.Sprintf("Hello %s,\n\nThanks for applying. Your application is now %s and our team will get back to you soon.\n",
			app.FullName, app.Status),
	}
}

// ContactReceived notifies staff at adminEmail. An empty address yields a
// message with no recipients, which mailers skip.
func ContactReceived(c contact.Contact, adminEmail string) Message {
	msg := Message{
		Subject: "New contact message from " + c.FullName,
		Text:    fmt.Sprintf("From: %s <%s>\n\n%s\n", c.FullName, c.Email, c.Message),
	}
	if adminEmail != "" {
		msg.To = []netmail.Address{{Address: adminEmail}}
	}
	return msg
}
