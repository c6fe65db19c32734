package application

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/domain/testimonial"
	"github.com/linskybing/bootcamp-go/internal/media"
	"github.com/linskybing/bootcamp-go/internal/repository"
)

type TestimonialService struct {
	Repos *repository.Repos
	store media.Store
	now   func() time.Time
}

// NewTestimonialService accepts a nil store; uploads are then rejected.
func NewTestimonialService(repos *repository.Repos, store media.Store) *TestimonialService {
	return &TestimonialService{
		Repos: repos,
		store: store,
		now:   time.Now,
	}
}

// Create stores the uploaded files first and removes them again when the
// testimonial cannot be saved.
func (s *TestimonialService) Create(ctx context.Context, input testimonial.CreateTestimonialInput, files []testimonial.MediaFile) (testimonial.Testimonial, error) {
	if err := input.Validate(); err != nil {
		return testimonial.Testimonial{}, err
	}
	if len(files) > 0 && s.store == nil {
		return testimonial.Testimonial{}, ErrMediaDisabled
	}

	uploaded := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.store.Put(ctx, f.Filename, f.ContentType, f.Body, f.Size)
		if err != nil {
			s.cleanup(ctx, uploaded)
			return testimonial.Testimonial{}, mediaError(f.Filename, err)
		}
		uploaded = append(uploaded, url)
	}

	t := testimonial.Testimonial{
		Name:      strings.TrimSpace(input.Name),
		Role:      strings.TrimSpace(input.Role),
		Content:   strings.TrimSpace(input.Content),
		Rating:    input.Rating,
		MediaURLs: uploaded,
		Status:    testimonial.Statuses.Initial,
	}
	if err := s.Repos.Testimonial.Create(&t); err != nil {
		s.cleanup(ctx, uploaded)
		return testimonial.Testimonial{}, err
	}
	return t, nil
}

func (s *TestimonialService) cleanup(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.store.Remove(ctx, url); err != nil {
			log.Printf("[testimonial] failed to remove %s: %v", url, err)
		}
	}
}

func mediaError(name string, err error) error {
	if errors.Is(err, media.ErrUnsupportedType) || errors.Is(err, media.ErrTooLarge) {
		var errs submission.Errors
		errs.Add("files", name+": "+err.Error())
		return errs.Err()
	}
	return err
}

// ListPublic returns approved testimonials, newest first.
func (s *TestimonialService) ListPublic(limit int) ([]testimonial.Testimonial, error) {
	approved := testimonial.StatusApproved
	list, err := s.Repos.Testimonial.List(repository.ListParams{Status: &approved, Limit: limit})
	if err != nil {
		return nil, err
	}
	public := list[:0]
	for _, t := range list {
		if t.Public() {
			public = append(public, t)
		}
	}
	return public, nil
}

func (s *TestimonialService) List(q ListQuery) ([]testimonial.Testimonial, error) {
	status, err := parseStatus(testimonial.Statuses, q.Status)
	if err != nil {
		return nil, err
	}
	return s.Repos.Testimonial.List(repository.ListParams{Status: status, Skip: q.Skip, Limit: q.Limit})
}

func (s *TestimonialService) Get(id string) (testimonial.Testimonial, error) {
	t, err := s.Repos.Testimonial.FindByID(id)
	return t, notFound(err)
}

func (s *TestimonialService) UpdateStatus(id string, target submission.Status) (testimonial.Testimonial, error) {
	t, err := s.Get(id)
	if err != nil {
		return testimonial.Testimonial{}, err
	}
	next, err := testimonial.Statuses.Transition(t.Status, target)
	if err != nil {
		return testimonial.Testimonial{}, err
	}
	if err := s.Repos.Testimonial.UpdateStatus(id, next, s.now()); err != nil {
		return testimonial.Testimonial{}, notFound(err)
	}
	return s.Get(id)
}

func (s *TestimonialService) Delete(id string) error {
	return notFound(s.Repos.Testimonial.Delete(id))
}

func (s *TestimonialService) Count(status *submission.Status) (int64, error) {
	return s.Repos.Testimonial.Count(status)
}
