package application

import (
	"time"

	"github.com/linskybing/bootcamp-go/internal/mail"
	"github.com/linskybing/bootcamp-go/internal/media"
	"github.com/linskybing/bootcamp-go/internal/repository"
)

// Deps carries the collaborators that are not repositories.
type Deps struct {
	Mailer       mail.Mailer
	Media        media.Store
	ServiceTypes []string
	AdminEmail   string
	TokenTTL     time.Duration
}

type Services struct {
	Application *ApplicationService
	Quote       *QuoteService
	Contact     *ContactService
	Testimonial *TestimonialService
	User        *UserService
	Dashboard   *DashboardService
}

func New(repos *repository.Repos, deps Deps) *Services {
	return &Services{
		Application: NewApplicationService(repos, deps.Mailer),
		Quote:       NewQuoteService(repos, deps.ServiceTypes),
		Contact:     NewContactService(repos, deps.Mailer, deps.AdminEmail),
		Testimonial: NewTestimonialService(repos, deps.Media),
		User:        NewUserService(repos, deps.TokenTTL),
		Dashboard:   NewDashboardService(repos),
	}
}
