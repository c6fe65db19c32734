package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/internal/domain/kind"
	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/domain/testimonial"
)

// Form is raw public-form input for one submission kind. Every field holds
// what the visitor typed; coercion happens when the form is submitted.
type Form interface {
	Kind() submission.Kind
}

type ApplicationForm struct {
	FullName          string
	Email             string
	WhatsApp          string
	Age               string
	City              string
	HasCodeExperience bool
	HasComputer       bool
	HasInternet       bool
	Motivation        string
	HoursPerWeek      string
	HowDidYouKnow     string
}

func (ApplicationForm) Kind() submission.Kind { return submission.KindApplication }

// Input coerces and checks the form. "10h" hours become 10 and empty hours
// become 0.
func (f ApplicationForm) Input() (application.CreateApplicationInput, error) {
	var coerce submission.Errors
	age, ok := submission.ParseInt(f.Age)
	if !ok {
		coerce.Add("age", "must be a whole number")
	}
	in := application.CreateApplicationInput{
		FullName:          strings.TrimSpace(f.FullName),
		Email:             strings.TrimSpace(f.Email),
		WhatsApp:          strings.TrimSpace(f.WhatsApp),
		Age:               age,
		City:              strings.TrimSpace(f.City),
		HasCodeExperience: f.HasCodeExperience,
		HasComputer:       f.HasComputer,
		HasInternet:       f.HasInternet,
		Motivation:        strings.TrimSpace(f.Motivation),
		HoursPerWeek:      submission.LeadingInt(f.HoursPerWeek),
		HowDidYouKnow:     strings.TrimSpace(f.HowDidYouKnow),
	}
	return in, merge(coerce, in.Validate())
}

type QuoteForm struct {
	FullName    string
	Email       string
	Phone       string
	CompanyName string
	ServiceType string
	Description string
	Budget      string
	Timeline    string
}

func (QuoteForm) Kind() submission.Kind { return submission.KindQuote }

// Input coerces and checks the form. The service type is only checked for
// presence; the server owns the catalog.
func (f QuoteForm) Input() (quote.CreateQuoteInput, error) {
	var coerce submission.Errors
	in := quote.CreateQuoteInput{
		FullName:    strings.TrimSpace(f.FullName),
		Email:       strings.TrimSpace(f.Email),
		Phone:       strings.TrimSpace(f.Phone),
		CompanyName: optional(f.CompanyName),
		ServiceType: strings.TrimSpace(f.ServiceType),
		Description: strings.TrimSpace(f.Description),
		Timeline:    optional(f.Timeline),
	}
	if strings.TrimSpace(f.Budget) != "" {
		budget, ok := submission.ParseFloat(f.Budget)
		if !ok {
			coerce.Add("budget", "must be a number")
		} else {
			in.Budget = &budget
		}
	}
	return in, merge(coerce, in.Validate(nil))
}

type ContactForm struct {
	FullName string
	Email    string
	Message  string
}

func (ContactForm) Kind() submission.Kind { return submission.KindContact }

func (f ContactForm) Input() (contact.CreateContactInput, error) {
	in := contact.CreateContactInput{
		FullName: strings.TrimSpace(f.FullName),
		Email:    strings.TrimSpace(f.Email),
		Message:  strings.TrimSpace(f.Message),
	}
	return in, in.Validate()
}

// Attachment is a media file sent with a testimonial.
type Attachment struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type TestimonialForm struct {
	Name    string
	Role    string
	Content string
	Rating  string
	Files   []Attachment
}

func (TestimonialForm) Kind() submission.Kind { return submission.KindTestimonial }

func (f TestimonialForm) Input() (testimonial.CreateTestimonialInput, error) {
	var coerce submission.Errors
	rating, ok := submission.ParseInt(f.Rating)
	if !ok {
		coerce.Add("rating", "must be a whole number")
	}
	in := testimonial.CreateTestimonialInput{
		Name:    strings.TrimSpace(f.Name),
		Role:    strings.TrimSpace(f.Role),
		Content: strings.TrimSpace(f.Content),
		Rating:  rating,
	}
	return in, merge(coerce, in.Validate())
}

// Submit sends any form and returns the stored entity.
func (c *Client) Submit(ctx context.Context, f Form) (submission.Entity, error) {
	var (
		e   submission.Entity
		err error
	)
	switch form := f.(type) {
	case ApplicationForm:
		e, err = c.SubmitApplication(ctx, form)
	case QuoteForm:
		e, err = c.SubmitQuote(ctx, form)
	case ContactForm:
		e, err = c.SubmitContact(ctx, form)
	case TestimonialForm:
		e, err = c.SubmitTestimonial(ctx, form)
	default:
		return nil, fmt.Errorf("unsupported form %T", f)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (c *Client) SubmitApplication(ctx context.Context, f ApplicationForm) (application.Application, error) {
	var out application.Application
	in, err := f.Input()
	if err != nil {
		return out, err
	}
	return out, c.create(ctx, submission.KindApplication, in, &out)
}

func (c *Client) SubmitQuote(ctx context.Context, f QuoteForm) (quote.Quote, error) {
	var out quote.Quote
	in, err := f.Input()
	if err != nil {
		return out, err
	}
	return out, c.create(ctx, submission.KindQuote, in, &out)
}

func (c *Client) SubmitContact(ctx context.Context, f ContactForm) (contact.Contact, error) {
	var out contact.Contact
	in, err := f.Input()
	if err != nil {
		return out, err
	}
	return out, c.create(ctx, submission.KindContact, in, &out)
}

// SubmitTestimonial posts JSON, or multipart when the form carries files.
func (c *Client) SubmitTestimonial(ctx context.Context, f TestimonialForm) (testimonial.Testimonial, error) {
	var out testimonial.Testimonial
	in, err := f.Input()
	if err != nil {
		return out, err
	}
	if len(f.Files) == 0 {
		return out, c.create(ctx, submission.KindTestimonial, in, &out)
	}

	body, contentType, err := multipartBody(in, f.Files)
	if err != nil {
		return out, err
	}
	req := request{
		method:      http.MethodPost,
		path:        kind.MustLookup(submission.KindTestimonial).Path,
		body:        body,
		contentType: contentType,
	}
	return out, c.do(ctx, req, &out)
}

// PublicTestimonials lists approved testimonials, newest first.
func (c *Client) PublicTestimonials(ctx context.Context, limit int) ([]testimonial.Testimonial, error) {
	req := request{method: http.MethodGet, path: kind.MustLookup(submission.KindTestimonial).Path}
	if limit > 0 {
		req.query = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	var out []testimonial.Testimonial
	return out, c.do(ctx, req, &out)
}

// ServiceTypes returns the service types the quote form accepts.
func (c *Client) ServiceTypes(ctx context.Context) ([]string, error) {
	var out []string
	req := request{method: http.MethodGet, path: kind.MustLookup(submission.KindQuote).Path + "/service-types"}
	return out, c.do(ctx, req, &out)
}

func (c *Client) create(ctx context.Context, k submission.Kind, payload, out any) error {
	req, err := jsonRequest(http.MethodPost, kind.MustLookup(k).Path, payload, false)
	if err != nil {
		return err
	}
	return c.do(ctx, req, out)
}

func multipartBody(in testimonial.CreateTestimonialInput, files []Attachment) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"name", in.Name},
		{"role", in.Role},
		{"content", in.Content},
		{"rating", strconv.Itoa(in.Rating)},
	}
	for _, kv := range fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", err
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, f.Filename))
		h.Set("Content-Type", f.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Body); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// merge keeps coercion errors and adds the validation errors of fields that
// coerced cleanly.
func merge(coerce submission.Errors, err error) error {
	var verr *submission.ValidationError
	if err != nil && !errors.As(err, &verr) {
		return err
	}
	if verr != nil {
		for _, f := range verr.Fields {
			if !hasField(coerce, f.Field) {
				coerce = append(coerce, f)
			}
		}
	}
	return coerce.Err()
}

func hasField(errs submission.Errors, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
