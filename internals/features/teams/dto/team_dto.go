package dto

import (
	"strings"

	"github.com/google/uuid"

	tModel "magangku_backend/internals/features/teams/model"
	userDto "magangku_backend/internals/features/users/user/dto"
)

type CreateTeamRequest struct {
	ProgramID     string   `json:"program_id" validate:"required,uuid4"`
	TeamName      string   `json:"team_name" validate:"required,min=3,max=100"`
	FieldLocation string   `json:"field_location" validate:"omitempty,max=200"`
	SupervisorID  string   `json:"supervisor_id" validate:"required,uuid4"`
	LeaderID      string   `json:"leader_id" validate:"required,uuid4"`
	MemberIDs     []string `json:"member_ids" validate:"required,min=8,max=10,dive,uuid4"`
}

func (r *CreateTeamRequest) Normalize() {
	r.TeamName = strings.TrimSpace(r.TeamName)
	r.FieldLocation = strings.TrimSpace(r.FieldLocation)
}

func (r *CreateTeamRequest) ToModel() *tModel.TeamModel {
	programID, _ := uuid.Parse(r.ProgramID)
	supervisorID, _ := uuid.Parse(r.SupervisorID)
	leaderID, _ := uuid.Parse(r.LeaderID)
	return &tModel.TeamModel{
		TeamProgramID:     programID,
		TeamName:          r.TeamName,
		TeamFieldLocation: r.FieldLocation,
		TeamSupervisorID:  supervisorID,
		TeamLeaderID:      leaderID,
		TeamIsActive:      true,
	}
}

type UpdateTeamRequest struct {
	TeamName      *string `json:"team_name,omitempty" validate:"omitempty,min=3,max=100"`
	FieldLocation *string `json:"field_location,omitempty" validate:"omitempty,max=200"`
	SupervisorID  *string `json:"supervisor_id,omitempty" validate:"omitempty,uuid4"`
	LeaderID      *string `json:"leader_id,omitempty" validate:"omitempty,uuid4"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}

// TeamWithMembers — detail tim + roster yang sudah di-resolve jadi user.
type TeamWithMembers struct {
	Team    tModel.TeamModel   `json:"team"`
	Members []userDto.UserLite `json:"members"`
}
