package dto

import (
	"strings"

	"github.com/google/uuid"

	regModel "magangku_backend/internals/features/registrations/model"
)

type CreateRegistrationRequest struct {
	ProgramID string `json:"program_id" validate:"required,uuid4"`
	FullName  string `json:"full_name" validate:"required,min=3,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,min=8,max=20"`
	Campus    string `json:"campus" validate:"required,min=3,max=150"`
	Major     string `json:"major" validate:"required,min=2,max=150"`
}

func (r *CreateRegistrationRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Campus = strings.TrimSpace(r.Campus)
	r.Major = strings.TrimSpace(r.Major)
}

func (r *CreateRegistrationRequest) ToModel(orderID string) *regModel.RegistrationModel {
	programID, _ := uuid.Parse(r.ProgramID)
	return &regModel.RegistrationModel{
		RegistrationProgramID: programID,
		RegistrationFullName:  r.FullName,
		RegistrationEmail:     r.Email,
		RegistrationPhone:     r.Phone,
		RegistrationCampus:    r.Campus,
		RegistrationMajor:     r.Major,
		RegistrationOrderID:   orderID,
		RegistrationStatus:    regModel.RegistrationStatusPending,
	}
}

type RejectRegistrationRequest struct {
	Notes string `json:"notes" validate:"required,min=3"`
}
