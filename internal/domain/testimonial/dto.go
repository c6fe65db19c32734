package testimonial

import (
	"io"

	"github.com/linskybing/bootcamp-go/internal/domain/submission"
)

// CreateTestimonialInput carries no media URLs; those only come from
// uploaded files.
type CreateTestimonialInput struct {
	Name    string `json:"name" form:"name" validate:"notblank"`
	Role    string `json:"role" form:"role" validate:"notblank"`
	Content string `json:"content" form:"content" validate:"notblank"`
	Rating  int    `json:"rating" form:"rating" validate:"min=1,max=5"`
}

func (in CreateTestimonialInput) Validate() error {
	return submission.Validate(in)
}

type UpdateTestimonialStatusInput struct {
	Status submission.Status `json:"status" binding:"required"`
}

// MediaFile is an uploaded attachment awaiting storage.
type MediaFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
