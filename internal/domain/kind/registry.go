// Package kind maps each submission kind to its endpoint, status set and
// field schema, so callers never branch on kind names themselves.
package kind

import (
	"fmt"
	"net/http"

	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/domain/testimonial"
)

type Spec struct {
	Kind     submission.Kind
	Label    string
	Path     string
	Statuses submission.StatusSet
	// StatusMethod and StatusSuffix locate the status-update route.
	StatusMethod string
	StatusSuffix string
	// AdminListSuffix is appended to Path for the moderator listing.
	AdminListSuffix string
	// Fields lists the JSON fields shown in a detail view, in order.
	Fields []string
}

var specs = []Spec{
	{
		Kind:         submission.KindApplication,
		Label:        "Application",
		Path:         "/applications",
		Statuses:     application.Statuses,
		StatusMethod: http.MethodPut,
		Fields: []string{"full_name", "email", "whatsapp", "age", "city", "has_code_experience",
			"has_computer", "has_internet", "motivation", "hours_per_week", "how_did_you_know"},
	},
	{
		Kind:         submission.KindQuote,
		Label:        "Quote",
		Path:         "/quotes",
		Statuses:     quote.Statuses,
		StatusMethod: http.MethodPatch,
		StatusSuffix: "/status",
		Fields: []string{"full_name", "email", "phone", "company_name", "service_type",
			"description", "budget", "timeline", "admin_notes"},
	},
	{
		Kind:         submission.KindContact,
		Label:        "Contact",
		Path:         "/contacts",
		Statuses:     contact.Statuses,
		StatusMethod: http.MethodPut,
		Fields:       []string{"full_name", "email", "message", "is_read"},
	},
	{
		Kind:            submission.KindTestimonial,
		Label:           "Testimonial",
		Path:            "/testimonials",
		Statuses:        testimonial.Statuses,
		StatusMethod:    http.MethodPatch,
		AdminListSuffix: "/admin",
		Fields:          []string{"name", "role", "content", "rating", "media_urls"},
	},
}

var byKind = func() map[submission.Kind]Spec {
	m := make(map[submission.Kind]Spec, len(specs))
	for _, s := range specs {
		m[s.Kind] = s
	}
	return m
}()

func Lookup(k submission.Kind) (Spec, error) {
	s, ok := byKind[k]
	if !ok {
		return Spec{}, fmt.Errorf("unknown submission kind %q", k)
	}
	return s, nil
}

func MustLookup(k submission.Kind) Spec {
	s, err := Lookup(k)
	if err != nil {
		panic(err)
	}
	return s
}

// All returns every kind in display order.
func All() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

func (s Spec) ListPath() string { return s.Path + s.AdminListSuffix }

func (s Spec) ItemPath(id string) string { return s.Path + "/" + id }

func (s Spec) StatusPath(id string) string { return s.ItemPath(id) + s.StatusSuffix }
