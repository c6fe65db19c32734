package application

import (
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
)

type CreateApplicationInput struct {
	FullName          string `json:"full_name" validate:"notblank"`
	Email             string `json:"email" validate:"required,email"`
	WhatsApp          string `json:"whatsapp" validate:"notblank"`
	Age               int    `json:"age" validate:"gte=15"`
	City              string `json:"city" validate:"notblank"`
	HasCodeExperience bool   `json:"has_code_experience"`
	HasComputer       bool   `json:"has_computer"`
	HasInternet       bool   `json:"has_internet"`
	Motivation        string `json:"motivation" validate:"notblank"`
	HoursPerWeek      int    `json:"hours_per_week" validate:"gte=0,lte=168"`
	HowDidYouKnow     string `json:"how_did_you_know" validate:"notblank"`
}

func (in CreateApplicationInput) Validate() error {
	return submission.Validate(in)
}

type UpdateApplicationStatusInput struct {
	Status submission.Status `json:"status" binding:"required"`
}
