// Package activity merges recent submissions from several sources into one
// feed ordered newest first.
package activity

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"golang.org/x/sync/errgroup"
)

const DefaultLimit = 5

type Item struct {
	Kind        submission.Kind `json:"kind"`
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
	Ago         string          `json:"ago"`
}

// Source fetches the items of one kind. Fetch must honor ctx.
type Source struct {
	Kind  submission.Kind
	Fetch func(ctx context.Context) ([]Item, error)
}

type Aggregator struct {
	sources []Source
	now     func() time.Time
}

func NewAggregator(sources ...Source) *Aggregator {
	return &Aggregator{sources: sources, now: time.Now}
}

// Recent fetches every source concurrently and returns at most limit items.
// A failing source contributes nothing; the error is logged. When ctx ends
// before all sources finish, the partial result is dropped.
func (a *Aggregator) Recent(ctx context.Context, limit int) ([]Item, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([][]Item, len(a.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range a.sources {
		i, src := i, src
		g.Go(func() error {
			items, err := src.Fetch(gctx)
			if err != nil {
				log.Printf("[activity] source %s failed: %v", src.Kind, err)
				return nil
			}
			results[i] = items
			return nil
		})
	}
	// Sources never fail the group, so Wait only joins them.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var merged []Item
	for _, items := range results {
		merged = append(merged, items...)
	}
	return Rank(merged, limit, a.now()), nil
}

// Rank sorts items newest first, keeps the first limit and fills Ago.
// Items with equal timestamps keep their relative order.
func Rank(items []Item, limit int, now time.Time) []Item {
	out := append([]Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Ago = Relative(out[i].Timestamp, now)
	}
	return out
}
