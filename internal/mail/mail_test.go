package mail

import (
	netmail "net/mail"
	"testing"

	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_SkipsMessagesWithoutRecipients(t *testing.T) {
	rec := &Recorder{}
	rec.Send(ContactReceived(contact.Contact{FullName: "A", Email: "a@test.com", Message: "hi"}, ""))
	assert.Empty(t, rec.Sent())

	rec.Send(ContactReceived(contact.Contact{FullName: "A", Email: "a@test.com", Message: "hi"}, "staff@test.com"))
	require.Len(t, rec.Sent(), 1)
	assert.Equal(t, "staff@test.com", rec.Sent()[0].To[0].Address)
	assert.Contains(t, rec.Sent()[0].Text, "hi")
}

func TestApplicationReceived(t *testing.T) {
	msg := ApplicationReceived(application.Application{FullName: "Ada", Email: "ada@test.com", Status: application.StatusPending})
	require.True(t, msg.HasRecipients())
	assert.Equal(t, "ada@test.com", msg.To[0].Address)
	assert.Contains(t, msg.Text, "pending")
}

func TestSendgridPrepare(t *testing.T) {
	m := NewSendgridMailer("key", netmail.Address{Address: "from@test.com"}, "Bootcamp")
	v3 := m.prepare(Message{To: []netmail.Address{{Name: "Ada", Address: "ada@test.com"}}, Subject: "Hi", Text: "body"})
	require.Len(t, v3.Personalizations, 1)
	assert.Equal(t, "[Bootcamp] Hi", v3.Personalizations[0].Subject)
	require.Len(t, v3.Content, 1)
	assert.Equal(t, "text/plain", v3.Content[0].Type)
}
