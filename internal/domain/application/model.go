package application

import (
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
)

const (
	StatusPending    submission.Status = "pending"
	StatusReviewing  submission.Status = "reviewing"
	StatusAccepted   submission.Status = "accepted"
	StatusRejected   submission.Status = "rejected"
	StatusWaitlisted submission.Status = "waitlisted"
)

var all = []submission.Status{StatusPending, StatusReviewing, StatusAccepted, StatusRejected, StatusWaitlisted}

// Statuses has no terminal state; staff may reopen any decision.
var Statuses = submission.StatusSet{
	Initial: StatusPending,
	States:  all,
	Targets: all,
}

type Application struct {
	submission.Base
	FullName          string            `json:"full_name" gorm:"not null"`
	Email             string            `json:"email" gorm:"uniqueIndex;not null"`
	WhatsApp          string            `json:"whatsapp"`
	Age               int               `json:"age"`
	City              string            `json:"city"`
	HasCodeExperience bool              `json:"has_code_experience"`
	HasComputer       bool              `json:"has_computer"`
	HasInternet       bool              `json:"has_internet"`
	Motivation        string            `json:"motivation" gorm:"type:text"`
	HoursPerWeek      int               `json:"hours_per_week"`
	HowDidYouKnow     string            `json:"how_did_you_know"`
	Status            submission.Status `json:"status" gorm:"type:varchar(20);index;default:'pending'"`
}

func (Application) TableName() string { return "applications" }

func (Application) Kind() submission.Kind { return submission.KindApplication }

func (a Application) CurrentStatus() submission.Status { return a.Status }

func (a Application) Matches(q string) bool {
	return submission.ContainsFold(q, a.FullName, a.Email, a.City, a.Motivation)
}
