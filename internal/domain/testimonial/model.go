package testimonial

import (
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"gorm.io/datatypes"
)

const (
	StatusPending  submission.Status = "pending"
	StatusApproved submission.Status = "approved"
	StatusRejected submission.Status = "rejected"
)

var all = []submission.Status{StatusPending, StatusApproved, StatusRejected}

var Statuses = submission.StatusSet{
	Initial: StatusPending,
	States:  all,
	Targets: all,
}

type Testimonial struct {
	submission.Base
	Name      string                      `json:"name" gorm:"not null"`
	Role      string                      `json:"role"`
	Content   string                      `json:"content" gorm:"type:text"`
	Rating    int                         `json:"rating"`
	MediaURLs datatypes.JSONSlice[string] `json:"media_urls"`
	Status    submission.Status           `json:"status" gorm:"type:varchar(20);index;default:'pending'"`
}

func (Testimonial) TableName() string { return "testimonials" }

func (Testimonial) Kind() submission.Kind { return submission.KindTestimonial }

func (t Testimonial) CurrentStatus() submission.Status { return t.Status }

// Public reports whether the testimonial may be shown on the public site.
func (t Testimonial) Public() bool { return t.Status == StatusApproved }

func (t Testimonial) Matches(q string) bool {
	return submission.ContainsFold(q, t.Name, t.Role, t.Content)
}
