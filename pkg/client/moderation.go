package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/internal/domain/kind"
	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/domain/testimonial"
)

// pageSize is the page requested per call. The server may return fewer.
const pageSize = 500

// Moderated is satisfied by every submission kind the console manages.
type Moderated interface {
	application.Application | quote.Quote | contact.Contact | testimonial.Testimonial
	submission.Entity
}

// Filter narrows a listing. Status is applied by the server, Search
// locally over names, emails and content.
type Filter struct {
	Status submission.Status
	Search string
}

func specOf[T Moderated]() kind.Spec {
	var zero T
	return kind.MustLookup(zero.Kind())
}

// List returns every submission of kind T matching f, newest first.
func List[T Moderated](ctx context.Context, c *Client, f Filter) ([]T, error) {
	spec := specOf[T]()
	if f.Status != "" && !spec.Statuses.Has(f.Status) {
		var errs submission.Errors
		errs.Add("status", fmt.Sprintf("must be one of %v", spec.Statuses.States))
		return nil, errs.Err()
	}

	var all []T
	for skip := 0; ; {
		page, err := listPage[T](ctx, c, f.Status, skip, pageSize)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		skip += len(page)
	}

	out := all[:0]
	for _, e := range all {
		if e.Matches(f.Search) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created().After(out[j].Created())
	})
	return out, nil
}

func listPage[T Moderated](ctx context.Context, c *Client, status submission.Status, skip, limit int) ([]T, error) {
	spec := specOf[T]()
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	if status != "" {
		q.Set("status", string(status))
	}
	var page []T
	err := c.do(ctx, request{method: http.MethodGet, path: spec.ListPath(), query: q, auth: true}, &page)
	return page, err
}

func Get[T Moderated](ctx context.Context, c *Client, id string) (T, error) {
	var out T
	if id == "" {
		return out, ErrNotFound
	}
	err := c.do(ctx, request{method: http.MethodGet, path: specOf[T]().ItemPath(url.PathEscape(id)), auth: true}, &out)
	return out, err
}

// UpdateStatus moves a submission to status and returns the stored result.
// Notes are only accepted for quotes; a nil notes pointer keeps the stored
// notes.
func UpdateStatus[T Moderated](ctx context.Context, c *Client, id string, status submission.Status, notes *string) (T, error) {
	var out T
	spec := specOf[T]()

	var errs submission.Errors
	if !spec.Statuses.CanTarget(status) {
		errs.Add("status", fmt.Sprintf("must be one of %v", spec.Statuses.Targets))
	}
	if notes != nil && spec.Kind != submission.KindQuote {
		errs.Add("admin_notes", "only quotes carry admin notes")
	}
	if err := errs.Err(); err != nil {
		return out, err
	}
	if id == "" {
		return out, ErrNotFound
	}

	payload := map[string]any{"status": status}
	if notes != nil {
		payload["admin_notes"] = *notes
	}
	req, err := jsonRequest(spec.StatusMethod, spec.StatusPath(url.PathEscape(id)), payload, true)
	if err != nil {
		return out, err
	}
	return out, c.do(ctx, req, &out)
}

func Delete[T Moderated](ctx context.Context, c *Client, id string) error {
	if id == "" {
		return ErrNotFound
	}
	return c.do(ctx, request{method: http.MethodDelete, path: specOf[T]().ItemPath(url.PathEscape(id)), auth: true}, nil)
}

// OpenContact loads a message for reading and marks it read the first time.
func OpenContact(ctx context.Context, c *Client, id string) (contact.Contact, error) {
	msg, err := Get[contact.Contact](ctx, c, id)
	if err != nil || msg.IsRead {
		return msg, err
	}
	return UpdateStatus[contact.Contact](ctx, c, id, contact.StatusRead, nil)
}
