package contact

import (
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
)

const (
	StatusUnread submission.Status = "unread"
	StatusRead   submission.Status = "read"
)

// Statuses only allows marking a message read; nothing exposes the reverse.
var Statuses = submission.StatusSet{
	Initial: StatusUnread,
	States:  []submission.Status{StatusUnread, StatusRead},
	Targets: []submission.Status{StatusRead},
}

type Contact struct {
	submission.Base
	FullName string `json:"full_name" gorm:"not null"`
	Email    string `json:"email" gorm:"index;not null"`
	Message  string `json:"message" gorm:"type:text"`
	IsRead   bool   `json:"is_read" gorm:"index;default:false"`
}

func (Contact) TableName() string { return "contacts" }

func (Contact) Kind() submission.Kind { return submission.KindContact }

func (c Contact) CurrentStatus() submission.Status {
	if c.IsRead {
		return StatusRead
	}
	return StatusUnread
}

func (c Contact) Matches(q string) bool {
	return submission.ContainsFold(q, c.FullName, c.Email, c.Message)
}
