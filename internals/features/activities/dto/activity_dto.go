package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"magangku_backend/internals/features/activities/model"
)

type CreateActivityRequest struct {
	TeamID      uuid.UUID `json:"team_id" validate:"required"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	Title       string    `json:"title" validate:"required,max=150"`
	Description *string   `json:"description" validate:"omitempty,max=5000"`
	Photos      []string  `json:"photos" validate:"omitempty,dive,url"`
}

func (r *CreateActivityRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Title = strings.TrimSpace(r.Title)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
}

func (r *CreateActivityRequest) ToModel(userID uuid.UUID) *model.ActivityModel {
	return &model.ActivityModel{
		ActivityTeamID:      r.TeamID,
		ActivityUserID:      userID,
		ActivityDate:        r.Date,
		ActivityTitle:       r.Title,
		ActivityDescription: r.Description,
		ActivityPhotos:      pq.StringArray(r.Photos),
	}
}

type UpdateActivityRequest struct {
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Title       *string  `json:"title" validate:"omitempty,max=150"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Photos      []string `json:"photos" validate:"omitempty,dive,url"`
}

func (r *UpdateActivityRequest) Normalize() {
	if r.Date != nil {
		d := strings.TrimSpace(*r.Date)
		r.Date = &d
	}
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
}

func (r *UpdateActivityRequest) ApplyToModel(m *model.ActivityModel) {
	if r.Date != nil {
		m.ActivityDate = *r.Date
	}
	if r.Title != nil {
		m.ActivityTitle = *r.Title
	}
	if r.Description != nil {
		m.ActivityDescription = r.Description
	}
	if r.Photos != nil {
		m.ActivityPhotos = pq.StringArray(r.Photos)
	}
}
