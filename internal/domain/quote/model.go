package quote

import (
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
)

const (
	StatusPending   submission.Status = "pending"
	StatusApproved  submission.Status = "approved"
	StatusRejected  submission.Status = "rejected"
	StatusCompleted submission.Status = "completed"
)

var all = []submission.Status{StatusPending, StatusApproved, StatusRejected, StatusCompleted}

// Statuses treats completed as an ordinary state; it can still be reopened.
var Statuses = submission.StatusSet{
	Initial: StatusPending,
	States:  all,
	Targets: all,
}

// DefaultServiceTypes is used when no catalog file overrides it.
var DefaultServiceTypes = []string{
	"Développement Web",
	"Développement Mobile",
	"Design UX/UI",
	"Conseil Technique",
	"Formation",
	"Autre",
}

type Quote struct {
	submission.Base
	FullName    string            `json:"full_name" gorm:"not null"`
	Email       string            `json:"email" gorm:"index;not null"`
	Phone       string            `json:"phone"`
	CompanyName *string           `json:"company_name,omitempty"`
	ServiceType string            `json:"service_type"`
	Description string            `json:"description" gorm:"type:text"`
	Budget      *float64          `json:"budget,omitempty"`
	Timeline    *string           `json:"timeline,omitempty"`
	Status      submission.Status `json:"status" gorm:"type:varchar(20);index;default:'pending'"`
	AdminNotes  *string           `json:"admin_notes,omitempty" gorm:"type:text"`
}

func (Quote) TableName() string { return "quotes" }

func (Quote) Kind() submission.Kind { return submission.KindQuote }

func (q Quote) CurrentStatus() submission.Status { return q.Status }

func (q Quote) Matches(s string) bool {
	company := ""
	if q.CompanyName != nil {
		company = *q.CompanyName
	}
	return submission.ContainsFold(s, q.FullName, q.Email, company, q.Description)
}
