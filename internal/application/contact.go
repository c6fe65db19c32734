package application

import (
	"strings"
	"time"

	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/mail"
	"github.com/linskybing/bootcamp-go/internal/repository"
)

type ContactService struct {
	Repos      *repository.Repos
	mailer     mail.Mailer
	adminEmail string
	now        func() time.Time
}

func NewContactService(repos *repository.Repos, mailer mail.Mailer, adminEmail string) *ContactService {
	return &ContactService{
		Repos:      repos,
		mailer:     mailer,
		adminEmail: adminEmail,
		now:        time.Now,
	}
}

func (s *ContactService) Create(input contact.CreateContactInput) (contact.Contact, error) {
	if err := input.Validate(); err != nil {
		return contact.Contact{}, err
	}
	c := contact.Contact{
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Message:  strings.TrimSpace(input.Message),
		IsRead:   false,
	}
	if err := s.Repos.Contact.Create(&c); err != nil {
		return contact.Contact{}, err
	}
	if s.mailer != nil {
		s.mailer.Send(mail.ContactReceived(c, s.adminEmail))
	}
	return c, nil
}

func (s *ContactService) List(q ListQuery) ([]contact.Contact, error) {
	status, err := parseStatus(contact.Statuses, q.Status)
	if err != nil {
		return nil, err
	}
	return s.Repos.Contact.List(repository.ListParams{Status: status, Skip: q.Skip, Limit: q.Limit})
}

func (s *ContactService) Get(id string) (contact.Contact, error) {
	c, err := s.Repos.Contact.FindByID(id)
	return c, notFound(err)
}

// UpdateStatus only ever marks a message read. Requesting unread is a
// validation error; marking an already read message is a no-op.
func (s *ContactService) UpdateStatus(id string, target submission.Status) (contact.Contact, error) {
	c, err := s.Get(id)
	if err != nil {
		return contact.Contact{}, err
	}
	if _, err := contact.Statuses.Transition(c.CurrentStatus(), target); err != nil {
		return contact.Contact{}, err
	}
	if c.IsRead {
		return c, nil
	}
	if err := s.Repos.Contact.MarkRead(id, s.now()); err != nil {
		return contact.Contact{}, notFound(err)
	}
	return s.Get(id)
}

func (s *ContactService) Delete(id string) error {
	return notFound(s.Repos.Contact.Delete(id))
}

func (s *ContactService) Count(status *submission.Status) (int64, error) {
	return s.Repos.Contact.Count(status)
}
