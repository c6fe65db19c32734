package application

import (
	"context"

	"github.com/linskybing/bootcamp-go/internal/activity"
	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/internal/domain/kind"
	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/repository"
)

// KindStats maps each status to its count.
type KindStats struct {
	Total    int64                       `json:"total"`
	ByStatus map[submission.Status]int64 `json:"by_status"`
}

type DashboardService struct {
	Repos *repository.Repos
}

func NewDashboardService(repos *repository.Repos) *DashboardService {
	return &DashboardService{Repos: repos}
}

// Recent merges the newest applications, quotes and contact messages.
func (s *DashboardService) Recent(ctx context.Context, limit int) ([]activity.Item, error) {
	if limit <= 0 {
		limit = activity.DefaultLimit
	}
	params := repository.ListParams{Limit: limit}
	agg := activity.NewAggregator(
		activity.SourceOf(submission.KindApplication, func(context.Context) ([]application.Application, error) {
			return s.Repos.Application.List(params)
		}),
		activity.SourceOf(submission.KindQuote, func(context.Context) ([]quote.Quote, error) {
			return s.Repos.Quote.List(params)
		}),
		activity.SourceOf(submission.KindContact, func(context.Context) ([]contact.Contact, error) {
			return s.Repos.Contact.List(params)
		}),
	)
	return agg.Recent(ctx, limit)
}

func (s *DashboardService) counter(k submission.Kind) func(*submission.Status) (int64, error) {
	switch k {
	case submission.KindApplication:
		return s.Repos.Application.Count
	case submission.KindQuote:
		return s.Repos.Quote.Count
	case submission.KindContact:
		return s.Repos.Contact.Count
	default:
		return s.Repos.Testimonial.Count
	}
}

// Stats counts every kind by status.
func (s *DashboardService) Stats() (map[submission.Kind]KindStats, error) {
	out := make(map[submission.Kind]KindStats)
	for _, spec := range kind.All() {
		count := s.counter(spec.Kind)
		stats := KindStats{ByStatus: make(map[submission.Status]int64, len(spec.Statuses.States))}
		for _, st := range spec.Statuses.States {
			st := st
			n, err := count(&st)
			if err != nil {
				return nil, err
			}
			stats.ByStatus[st] = n
			stats.Total += n
		}
		out[spec.Kind] = stats
	}
	return out, nil
}
