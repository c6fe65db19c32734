package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/linskybing/bootcamp-go/internal/activity"
	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
)

// Activities reads the newest applications, quotes and contact messages in
// parallel and merges them into one feed. A kind that fails to load is left
// out.
func (c *Client) Activities(ctx context.Context, limit int) ([]activity.Item, error) {
	if limit <= 0 {
		limit = activity.DefaultLimit
	}
	agg := activity.NewAggregator(
		activity.SourceOf(submission.KindApplication, func(ctx context.Context) ([]application.Application, error) {
			return listPage[application.Application](ctx, c, "", 0, limit)
		}),
		activity.SourceOf(submission.KindQuote, func(ctx context.Context) ([]quote.Quote, error) {
			return listPage[quote.Quote](ctx, c, "", 0, limit)
		}),
		activity.SourceOf(submission.KindContact, func(ctx context.Context) ([]contact.Contact, error) {
			return listPage[contact.Contact](ctx, c, "", 0, limit)
		}),
	)
	return agg.Recent(ctx, limit)
}

// ServerActivities asks the backend to build the same feed.
func (c *Client) ServerActivities(ctx context.Context, limit int) ([]activity.Item, error) {
	req := request{method: http.MethodGet, path: "/dashboard/activities", auth: true}
	if limit > 0 {
		req.query = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	var out []activity.Item
	return out, c.do(ctx, req, &out)
}

type KindStats struct {
	Total    int64                       `json:"total"`
	ByStatus map[submission.Status]int64 `json:"by_status"`
}

func (c *Client) Stats(ctx context.Context) (map[submission.Kind]KindStats, error) {
	var out map[submission.Kind]KindStats
	return out, c.do(ctx, request{method: http.MethodGet, path: "/dashboard/stats", auth: true}, &out)
}
