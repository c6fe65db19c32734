package submission

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindApplication Kind = "application"
	KindQuote       Kind = "quote"
	KindContact     Kind = "contact"
	KindTestimonial Kind = "testimonial"
)

type Status string

// StatusSet describes the moderation lifecycle of one kind. Targets are the
// statuses a moderator may request; any target is accepted from any state.
type StatusSet struct {
	Initial Status
	States  []Status
	Targets []Status
}

func (s StatusSet) Has(st Status) bool {
	for _, v := range s.States {
		if v == st {
			return true
		}
	}
	return false
}

func (s StatusSet) CanTarget(st Status) bool {
	for _, v := range s.Targets {
		if v == st {
			return true
		}
	}
	return false
}

// Transition returns the status an entity moves to. The current status is
// accepted as-is: moderation is corrective and decisions may be reopened.
func (s StatusSet) Transition(current, target Status) (Status, error) {
	if !s.CanTarget(target) {
		return current, &ValidationError{Fields: []FieldError{{
			Field:   "status",
			Message: fmt.Sprintf("status must be one of %v", s.Targets),
		}}}
	}
	return target, nil
}

// Entity is implemented by every submission kind.
type Entity interface {
	GetID() string
	Kind() Kind
	Created() time.Time
	CurrentStatus() Status
	// Matches reports whether the entity's name, email or content contains q.
	Matches(q string) bool
}
