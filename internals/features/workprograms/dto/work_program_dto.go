package dto

import (
	"strings"

	"github.com/google/uuid"

	"magangku_backend/internals/features/workprograms/model"
)

type CreateWorkProgramRequest struct {
	TeamID        uuid.UUID `json:"team_id" validate:"required"`
	Title         string    `json:"title" validate:"required,max=150"`
	Description   *string   `json:"description" validate:"omitempty,max=5000"`
	TargetOutcome *string   `json:"target_outcome" validate:"omitempty,max=5000"`
	StartWeek     string    `json:"start_week" validate:"required"` // YYYY-Www
	EndWeek       string    `json:"end_week" validate:"required"`   // YYYY-Www
}

func (r *CreateWorkProgramRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.StartWeek = strings.ToUpper(strings.TrimSpace(r.StartWeek))
	r.EndWeek = strings.ToUpper(strings.TrimSpace(r.EndWeek))
	trimPtr(&r.Description)
	trimPtr(&r.TargetOutcome)
}

func (r *CreateWorkProgramRequest) ToModel(createdBy uuid.UUID) *model.WorkProgramModel {
	return &model.WorkProgramModel{
		WorkProgramTeamID:        r.TeamID,
		WorkProgramTitle:         r.Title,
		WorkProgramDescription:   r.Description,
		WorkProgramTargetOutcome: r.TargetOutcome,
		WorkProgramStartWeek:     r.StartWeek,
		WorkProgramEndWeek:       r.EndWeek,
		WorkProgramCreatedBy:     createdBy,
	}
}

type UpdateWorkProgramRequest struct {
	Title         *string `json:"title" validate:"omitempty,max=150"`
	Description   *string `json:"description" validate:"omitempty,max=5000"`
	TargetOutcome *string `json:"target_outcome" validate:"omitempty,max=5000"`
	StartWeek     *string `json:"start_week"` // YYYY-Www
	EndWeek       *string `json:"end_week"`   // YYYY-Www
}

func (r *UpdateWorkProgramRequest) Normalize() {
	trimPtr(&r.Title)
	trimPtr(&r.Description)
	trimPtr(&r.TargetOutcome)
	upperPtr(&r.StartWeek)
	upperPtr(&r.EndWeek)
}

func (r *UpdateWorkProgramRequest) ApplyToModel(m *model.WorkProgramModel) {
	if r.Title != nil {
		m.WorkProgramTitle = *r.Title
	}
	if r.Description != nil {
		m.WorkProgramDescription = r.Description
	}
	if r.TargetOutcome != nil {
		m.WorkProgramTargetOutcome = r.TargetOutcome
	}
	if r.StartWeek != nil {
		m.WorkProgramStartWeek = *r.StartWeek
	}
	if r.EndWeek != nil {
		m.WorkProgramEndWeek = *r.EndWeek
	}
}

func trimPtr(s **string) {
	if *s != nil {
		v := strings.TrimSpace(**s)
		*s = &v
	}
}

func upperPtr(s **string) {
	if *s != nil {
		v := strings.ToUpper(strings.TrimSpace(**s))
		*s = &v
	}
}
