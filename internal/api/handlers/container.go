package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/bootcamp-go/internal/application"
)

type Handlers struct {
	Application *ApplicationHandler
	Quote       *QuoteHandler
	Contact     *ContactHandler
	Testimonial *TestimonialHandler
	User        *UserHandler
	Dashboard   *DashboardHandler
	Router      *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	h := &Handlers{
		Application: NewApplicationHandler(svc.Application),
		Quote:       NewQuoteHandler(svc.Quote),
		Contact:     NewContactHandler(svc.Contact),
		Testimonial: NewTestimonialHandler(svc.Testimonial),
		User:        NewUserHandler(svc.User),
		Dashboard:   NewDashboardHandler(svc.Dashboard),
		Router:      router,
	}
	return h
}
