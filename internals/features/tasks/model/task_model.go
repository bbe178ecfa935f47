package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskModel — tugas mingguan tim. Penyelesaian bersifat satu arah
// (tidak ada un-complete).
type TaskModel struct {
	TaskID          uuid.UUID `gorm:"column:task_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"task_id"`
	TaskTeamID      uuid.UUID `gorm:"column:task_team_id;type:uuid;not null;index:idx_task_team_week" json:"task_team_id"`
	TaskWeek        string    `gorm:"column:task_week;type:varchar(8);not null;index:idx_task_team_week" json:"task_week"` // YYYY-Www
	TaskTitle       string    `gorm:"column:task_title;type:varchar(200);not null" json:"task_title"`
	TaskDescription *string   `gorm:"column:task_description;type:text" json:"task_description,omitempty"`
	TaskAssigneeID  uuid.UUID `gorm:"column:task_assignee_id;type:uuid;not null;index" json:"task_assignee_id"`
	TaskIsDone      bool      `gorm:"column:task_is_done;not null;default:false" json:"task_is_done"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TaskModel) TableName() string {
	return "tasks"
}
