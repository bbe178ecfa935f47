package dto

import (
	"strings"

	"github.com/google/uuid"

	taskModel "magangku_backend/internals/features/tasks/model"
)

type CreateTaskRequest struct {
	TeamID      string  `json:"team_id" validate:"required,uuid4"`
	Week        string  `json:"week" validate:"required"` // divalidasi ResolveWeekRange di controller
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description *string `json:"description,omitempty"`
	AssigneeID  string  `json:"assignee_id" validate:"required,uuid4"`
}

func (r *CreateTaskRequest) Normalize() {
	r.Week = strings.TrimSpace(r.Week)
	r.Title = strings.TrimSpace(r.Title)
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
}

func (r *CreateTaskRequest) ToModel() *taskModel.TaskModel {
	teamID, _ := uuid.Parse(r.TeamID)
	assigneeID, _ := uuid.Parse(r.AssigneeID)
	return &taskModel.TaskModel{
		TaskTeamID:      teamID,
		TaskWeek:        r.Week,
		TaskTitle:       r.Title,
		TaskDescription: r.Description,
		TaskAssigneeID:  assigneeID,
	}
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description *string `json:"description,omitempty"`
	AssigneeID  *string `json:"assignee_id,omitempty" validate:"omitempty,uuid4"`
}
