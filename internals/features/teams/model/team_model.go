package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Batas anggota per tim sesuai aturan program.
const (
	TeamRosterMin = 8
	TeamRosterMax = 10
)

type TeamModel struct {
	TeamID            uuid.UUID `gorm:"column:team_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"team_id"`
	TeamProgramID     uuid.UUID `gorm:"column:team_program_id;type:uuid;not null;index" json:"team_program_id"`
	TeamName          string    `gorm:"column:team_name;type:varchar(100);not null" json:"team_name"`
	TeamFieldLocation string    `gorm:"column:team_field_location;type:varchar(200)" json:"team_field_location"`
	TeamSupervisorID  uuid.UUID `gorm:"column:team_supervisor_id;type:uuid;not null;index" json:"team_supervisor_id"`
	TeamLeaderID      uuid.UUID `gorm:"column:team_leader_id;type:uuid;not null" json:"team_leader_id"`
	TeamIsActive      bool      `gorm:"column:team_is_active;not null;default:true" json:"team_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TeamModel) TableName() string {
	return "teams"
}
