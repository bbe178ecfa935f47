package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkProgramModel — program kerja tim, direncanakan dalam rentang minggu.
type WorkProgramModel struct {
	WorkProgramID            uuid.UUID `gorm:"column:work_program_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"work_program_id"`
	WorkProgramTeamID        uuid.UUID `gorm:"column:work_program_team_id;type:uuid;not null;index" json:"work_program_team_id"`
	WorkProgramTitle         string    `gorm:"column:work_program_title;type:varchar(150);not null" json:"work_program_title"`
	WorkProgramDescription   *string   `gorm:"column:work_program_description;type:text" json:"work_program_description,omitempty"`
	WorkProgramTargetOutcome *string   `gorm:"column:work_program_target_outcome;type:text" json:"work_program_target_outcome,omitempty"`
	WorkProgramStartWeek     string    `gorm:"column:work_program_start_week;type:varchar(8);not null" json:"work_program_start_week"` // YYYY-Www
	WorkProgramEndWeek       string    `gorm:"column:work_program_end_week;type:varchar(8);not null" json:"work_program_end_week"`     // YYYY-Www
	WorkProgramCreatedBy     uuid.UUID `gorm:"column:work_program_created_by;type:uuid;not null" json:"work_program_created_by"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (WorkProgramModel) TableName() string {
	return "work_programs"
}
