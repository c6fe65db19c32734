package application

import (
	"errors"

	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/internal/media"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("an application with this email already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveUser       = errors.New("inactive user")
	ErrUserTaken          = errors.New("username or email already registered")
	ErrDeleteSelf         = errors.New("cannot delete your own account")
	ErrPasswordHash       = errors.New("failed to hash password")
	ErrMediaDisabled      = media.ErrDisabled
)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ListQuery is the moderator listing filter. An empty Status lists every
// status.
type ListQuery struct {
	Status string
	Skip   int
	Limit  int
}

func parseStatus(set submission.StatusSet, raw string) (*submission.Status, error) {
	if raw == "" {
		return nil, nil
	}
	st := submission.Status(raw)
	if !set.Has(st) {
		var errs submission.Errors
		errs.Add("status", "unknown status "+raw)
		return nil, errs.Err()
	}
	return &st, nil
}
