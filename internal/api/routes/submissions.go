package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/bootcamp-go/internal/api/handlers"
	"github.com/linskybing/bootcamp-go/internal/domain/kind"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
)

// moderation is the handler set every submission kind exposes to admins.
type moderation struct {
	list, get, updateStatus, remove gin.HandlerFunc
}

// SubmissionRoutes registers the unauthenticated create endpoints and the
// public testimonial wall.
func SubmissionRoutes(rg *gin.RouterGroup, h *handlers.Handlers) {
	rg.POST(kind.MustLookup(submission.KindApplication).Path, h.Application.Create)

	quotes := kind.MustLookup(submission.KindQuote).Path
	rg.POST(quotes, h.Quote.Create)
	rg.GET(quotes+"/service-types", h.Quote.ServiceTypes)

	rg.POST(kind.MustLookup(submission.KindContact).Path, h.Contact.Create)

	testimonials := kind.MustLookup(submission.KindTestimonial).Path
	rg.GET(testimonials, h.Testimonial.ListPublic)
	rg.POST(testimonials, h.Testimonial.Create)
}

// ModerationRoutes registers list, read, status and delete endpoints for
// each kind at the paths its registry entry declares.
func ModerationRoutes(rg *gin.RouterGroup, h *handlers.Handlers) {
	byKind := map[submission.Kind]moderation{
		submission.KindApplication: {h.Application.List, h.Application.Get, h.Application.UpdateStatus, h.Application.Delete},
		submission.KindQuote:       {h.Quote.List, h.Quote.Get, h.Quote.UpdateStatus, h.Quote.Delete},
		submission.KindContact:     {h.Contact.List, h.Contact.Get, h.Contact.UpdateStatus, h.Contact.Delete},
		submission.KindTestimonial: {h.Testimonial.List, h.Testimonial.Get, h.Testimonial.UpdateStatus, h.Testimonial.Delete},
	}

	for _, spec := range kind.All() {
		m := byKind[spec.Kind]
		rg.GET(spec.ListPath(), m.list)
		rg.GET(spec.ItemPath(":id"), m.get)
		rg.Handle(spec.StatusMethod, spec.StatusPath(":id"), m.updateStatus)
		rg.DELETE(spec.ItemPath(":id"), m.remove)
	}
}
