package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ActivityModel — log kegiatan harian anggota di lokasi.
type ActivityModel struct {
	ActivityID          uuid.UUID      `gorm:"column:activity_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"activity_id"`
	ActivityTeamID      uuid.UUID      `gorm:"column:activity_team_id;type:uuid;not null;index:idx_activity_team_date" json:"activity_team_id"`
	ActivityUserID      uuid.UUID      `gorm:"column:activity_user_id;type:uuid;not null;index" json:"activity_user_id"`
	ActivityDate        string         `gorm:"column:activity_date;type:varchar(10);not null;index:idx_activity_team_date" json:"activity_date"` // YYYY-MM-DD
	ActivityTitle       string         `gorm:"column:activity_title;type:varchar(150);not null" json:"activity_title"`
	ActivityDescription *string        `gorm:"column:activity_description;type:text" json:"activity_description,omitempty"`
	ActivityPhotos      pq.StringArray `gorm:"column:activity_photos;type:text[]" json:"activity_photos"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (ActivityModel) TableName() string {
	return "activities"
}
