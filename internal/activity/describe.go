package activity

import (
	"context"
	"fmt"
	"strings"

	"github.com/linskybing/bootcamp-go/internal/domain/application"
	"github.com/linskybing/bootcamp-go/internal/domain/contact"
	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/domain/testimonial"
)

const excerptLen = 80

// FromEntity turns a submission into a feed item.
func FromEntity(e submission.Entity) Item {
	item := Item{Kind: e.Kind(), ID: e.GetID(), Timestamp: e.Created()}
	switch v := e.(type) {
	case application.Application:
		item.Title = "New application"
		item.Description = fmt.Sprintf("%s from %s applied", v.FullName, v.City)
	case quote.Quote:
		item.Title = "New quote request"
		item.Description = fmt.Sprintf("%s asked for %s", v.FullName, v.ServiceType)
	case contact.Contact:
		item.Title = "New message"
		item.Description = fmt.Sprintf("%s: %s", v.FullName, excerpt(v.Message))
	case testimonial.Testimonial:
		item.Title = "New testimonial"
		item.Description = fmt.Sprintf("%s rated %d/5", v.Name, v.Rating)
	default:
		item.Title = "New " + string(e.Kind())
	}
	return item
}

// SourceOf adapts a typed list call into a Source.
func SourceOf[T submission.Entity](k submission.Kind, list func(ctx context.Context) ([]T, error)) Source {
	return Source{
		Kind: k,
		Fetch: func(ctx context.Context) ([]Item, error) {
			entities, err := list(ctx)
			if err != nil {
				return nil, err
			}
			items := make([]Item, 0, len(entities))
			for _, e := range entities {
				items = append(items, FromEntity(e))
			}
			return items, nil
		},
	}
}

func excerpt(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= excerptLen {
		return s
	}
	return string(r[:excerptLen]) + "…"
}
