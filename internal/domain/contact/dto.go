package contact

import (
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
)

type CreateContactInput struct {
	FullName string `json:"full_name" validate:"notblank"`
	Email    string `json:"email" validate:"required,email"`
	Message  string `json:"message" validate:"notblank"`
}

func (in CreateContactInput) Validate() error {
	return submission.Validate(in)
}

// UpdateContactStatusInput accepts either {"status": "read"} or the legacy
// {"is_read": true} body.
type UpdateContactStatusInput struct {
	Status *submission.Status `json:"status,omitempty"`
	IsRead *bool              `json:"is_read,omitempty"`
}

// Target resolves the requested status.
func (in UpdateContactStatusInput) Target() (submission.Status, error) {
	switch {
	case in.Status != nil:
		return *in.Status, nil
	case in.IsRead != nil && *in.IsRead:
		return StatusRead, nil
	case in.IsRead != nil:
		return StatusUnread, nil
	}
	var errs submission.Errors
	errs.Add("status", "is required")
	return "", errs.Err()
}
