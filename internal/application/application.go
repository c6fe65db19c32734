package application

import (
	"errors"
	"strings"
	"time"

	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/mail"
	"github.com/linskybing/bootcamp-go/internal/repository"
	"gorm.io/gorm"
)

type ApplicationService struct {
	Repos  *repository.Repos
	mailer mail.Mailer
	now    func() time.Time
}

func NewApplicationService(repos *repository.Repos, mailer mail.Mailer) *ApplicationService {
	return &ApplicationService{
		Repos:  repos,
		mailer: mailer,
		now:    time.Now,
	}
}

func (s *ApplicationService) Create(input application.CreateApplicationInput) (application.Application, error) {
	if err := input.Validate(); err != nil {
		return application.Application{}, err
	}

	app := application.Application{
		FullName:          strings.TrimSpace(input.FullName),
		Email:             strings.ToLower(strings.TrimSpace(input.Email)),
		WhatsApp:          strings.TrimSpace(input.WhatsApp),
		Age:               input.Age,
		City:              strings.TrimSpace(input.City),
		HasCodeExperience: input.HasCodeExperience,
		HasComputer:       input.HasComputer,
		HasInternet:       input.HasInternet,
		Motivation:        strings.TrimSpace(input.Motivation),
		HoursPerWeek:      input.HoursPerWeek,
		HowDidYouKnow:     strings.TrimSpace(input.HowDidYouKnow),
		Status:            application.Statuses.Initial,
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		exists, err := tx.Application.ExistsByEmail(app.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateEmail
		}
		return tx.Application.Create(&app)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent submission won the unique index.
		return application.Application{}, ErrDuplicateEmail
	}
	if err != nil {
		return application.Application{}, err
	}

	if s.mailer != nil {
		s.mailer.Send(mail.ApplicationReceived(app))
	}
	return app, nil
}

func (s *ApplicationService) List(q ListQuery) ([]application.Application, error) {
	status, err := parseStatus(application.Statuses, q.Status)
	if err != nil {
		return nil, err
	}
	return s.Repos.Application.List(repository.ListParams{Status: status, Skip: q.Skip, Limit: q.Limit})
}

func (s *ApplicationService) Get(id string) (application.Application, error) {
	app, err := s.Repos.Application.FindByID(id)
	return app, notFound(err)
}

func (s *ApplicationService) UpdateStatus(id string, target submission.Status) (application.Application, error) {
	app, err := s.Get(id)
	if err != nil {
		return application.Application{}, err
	}
	next, err := application.Statuses.Transition(app.Status, target)
	if err != nil {
		return application.Application{}, err
	}
	if err := s.Repos.Application.UpdateStatus(id, next, s.now()); err != nil {
		return application.Application{}, notFound(err)
	}
	return s.Get(id)
}

func (s *ApplicationService) Delete(id string) error {
	return notFound(s.Repos.Application.Delete(id))
}

func (s *ApplicationService) Count(status *submission.Status) (int64, error) {
	return s.Repos.Application.Count(status)
}
