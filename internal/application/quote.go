package application

import (
	"strings"
	"time"

	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/repository"
)

type QuoteService struct {
	Repos        *repository.Repos
	ServiceTypes []string
	now          func() time.Time
}

// NewQuoteService restricts service_type to serviceTypes; an empty list
// accepts any value.
func NewQuoteService(repos *repository.Repos, serviceTypes []string) *QuoteService {
	return &QuoteService{
		Repos:        repos,
		ServiceTypes: serviceTypes,
		now:          time.Now,
	}
}

func (s *QuoteService) Create(input quote.CreateQuoteInput) (quote.Quote, error) {
	if err := input.Validate(s.ServiceTypes); err != nil {
		return quote.Quote{}, err
	}
	q := quote.Quote{
		FullName:    strings.TrimSpace(input.FullName),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:       strings.TrimSpace(input.Phone),
		CompanyName: trimmedOrNil(input.CompanyName),
		ServiceType: input.ServiceType,
		Description: strings.TrimSpace(input.Description),
		Budget:      input.Budget,
		Timeline:    trimmedOrNil(input.Timeline),
		Status:      quote.Statuses.Initial,
	}
	if err := s.Repos.Quote.Create(&q); err != nil {
		return quote.Quote{}, err
	}
	return q, nil
}

func (s *QuoteService) List(q ListQuery) ([]quote.Quote, error) {
	status, err := parseStatus(quote.Statuses, q.Status)
	if err != nil {
		return nil, err
	}
	return s.Repos.Quote.List(repository.ListParams{Status: status, Skip: q.Skip, Limit: q.Limit})
}

func (s *QuoteService) Get(id string) (quote.Quote, error) {
	q, err := s.Repos.Quote.FindByID(id)
	return q, notFound(err)
}

// UpdateStatus is the only path that writes admin notes.
func (s *QuoteService) UpdateStatus(id string, input quote.UpdateQuoteStatusInput) (quote.Quote, error) {
	q, err := s.Get(id)
	if err != nil {
		return quote.Quote{}, err
	}
	next, err := quote.Statuses.Transition(q.Status, input.Status)
	if err != nil {
		return quote.Quote{}, err
	}
	if err := s.Repos.Quote.UpdateStatus(id, next, input.AdminNotes, s.now()); err != nil {
		return quote.Quote{}, notFound(err)
	}
	return s.Get(id)
}

func (s *QuoteService) Delete(id string) error {
	return notFound(s.Repos.Quote.Delete(id))
}

func (s *QuoteService) Count(status *submission.Status) (int64, error) {
	return s.Repos.Quote.Count(status)
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
