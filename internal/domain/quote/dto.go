package quote

import (
	"errors"
	"strings"

	"github.com/linskybing/bootcamp-go/internal/domain/submission"
)

type CreateQuoteInput struct {
	FullName    string   `json:"full_name" validate:"notblank"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone" validate:"notblank"`
	CompanyName *string  `json:"company_name,omitempty"`
	ServiceType string   `json:"service_type" validate:"notblank"`
	Description string   `json:"description" validate:"notblank"`
	Budget      *float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Timeline    *string  `json:"timeline,omitempty"`
}

// Validate checks the payload. An empty serviceTypes list accepts any
// non-empty service type.
func (in CreateQuoteInput) Validate(serviceTypes []string) error {
	err := submission.Validate(in)
	if strings.TrimSpace(in.ServiceType) == "" || len(serviceTypes) == 0 || contains(serviceTypes, in.ServiceType) {
		return err
	}
	var errs submission.Errors
	var verr *submission.ValidationError
	if errors.As(err, &verr) {
		errs = verr.Fields
	} else if err != nil {
		return err
	}
	errs.Add("service_type", "must be one of ["+strings.Join(serviceTypes, ", ")+"]")
	return errs.Err()
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// UpdateQuoteStatusInput is the only payload that may carry admin notes.
type UpdateQuoteStatusInput struct {
	Status     submission.Status `json:"status" binding:"required"`
	AdminNotes *string           `json:"admin_notes,omitempty"`
}
