package dto

import (
	"strings"

	pModel "magangku_backend/internals/features/programs/model"
)

type CreateProgramRequest struct {
	ProgramName         string `json:"program_name" validate:"required,min=3,max=150"`
	ProgramAcademicYear string `json:"program_academic_year" validate:"required,len=9"` // "2024/2025"
	ProgramDescription  string `json:"program_description"`
	ProgramStartDate    string `json:"program_start_date" validate:"required,datetime=2006-01-02"`
	ProgramEndDate      string `json:"program_end_date" validate:"required,datetime=2006-01-02"`
	ProgramRegOpenDate  string `json:"program_reg_open_date" validate:"omitempty,datetime=2006-01-02"`
	ProgramRegCloseDate string `json:"program_reg_close_date" validate:"omitempty,datetime=2006-01-02"`
	ProgramQuota        int    `json:"program_quota" validate:"gte=0"`
	ProgramFee          int64  `json:"program_fee" validate:"gte=0"`
	ProgramIsOpen       *bool  `json:"program_is_open,omitempty"`
}

func (r *CreateProgramRequest) Normalize() {
	r.ProgramName = strings.TrimSpace(r.ProgramName)
	r.ProgramAcademicYear = strings.TrimSpace(r.ProgramAcademicYear)
	r.ProgramDescription = strings.TrimSpace(r.ProgramDescription)
}

func (r *CreateProgramRequest) ToModel() *pModel.ProgramModel {
	m := &pModel.ProgramModel{
		ProgramName:         r.ProgramName,
		ProgramAcademicYear: r.ProgramAcademicYear,
		ProgramDescription:  r.ProgramDescription,
		ProgramStartDate:    r.ProgramStartDate,
		ProgramEndDate:      r.ProgramEndDate,
		ProgramRegOpenDate:  r.ProgramRegOpenDate,
		ProgramRegCloseDate: r.ProgramRegCloseDate,
		ProgramQuota:        r.ProgramQuota,
		ProgramFee:          r.ProgramFee,
	}
	if r.ProgramIsOpen != nil {
		m.ProgramIsOpen = *r.ProgramIsOpen
	}
	return m
}

type UpdateProgramRequest struct {
	ProgramName         *string `json:"program_name,omitempty" validate:"omitempty,min=3,max=150"`
	ProgramAcademicYear *string `json:"program_academic_year,omitempty" validate:"omitempty,len=9"`
	ProgramDescription  *string `json:"program_description,omitempty"`
	ProgramStartDate    *string `json:"program_start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ProgramEndDate      *string `json:"program_end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ProgramRegOpenDate  *string `json:"program_reg_open_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ProgramRegCloseDate *string `json:"program_reg_close_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ProgramQuota        *int    `json:"program_quota,omitempty" validate:"omitempty,gte=0"`
	ProgramFee          *int64  `json:"program_fee,omitempty" validate:"omitempty,gte=0"`
	ProgramIsOpen       *bool   `json:"program_is_open,omitempty"`
}

func (r *UpdateProgramRequest) ApplyToModel(m *pModel.ProgramModel) {
	if r.ProgramName != nil {
		m.ProgramName = strings.TrimSpace(*r.ProgramName)
	}
	if r.ProgramAcademicYear != nil {
		m.ProgramAcademicYear = strings.TrimSpace(*r.ProgramAcademicYear)
	}
	if r.ProgramDescription != nil {
		m.ProgramDescription = strings.TrimSpace(*r.ProgramDescription)
	}
	if r.ProgramStartDate != nil {
		m.ProgramStartDate = *r.ProgramStartDate
	}
	if r.ProgramEndDate != nil {
		m.ProgramEndDate = *r.ProgramEndDate
	}
	if r.ProgramRegOpenDate != nil {
		m.ProgramRegOpenDate = *r.ProgramRegOpenDate
	}
	if r.ProgramRegCloseDate != nil {
		m.ProgramRegCloseDate = *r.ProgramRegCloseDate
	}
	if r.ProgramQuota != nil {
		m.ProgramQuota = *r.ProgramQuota
	}
	if r.ProgramFee != nil {
		m.ProgramFee = *r.ProgramFee
	}
	if r.ProgramIsOpen != nil {
		m.ProgramIsOpen = *r.ProgramIsOpen
	}
}
