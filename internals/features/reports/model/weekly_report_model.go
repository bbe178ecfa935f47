package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	ReportStatusDraft             = "draft"
	ReportStatusSubmitted         = "submitted"
	ReportStatusApproved          = "approved"
	ReportStatusRevisionRequested = "revision_requested"
)

// ReportComment — komentar supervisor, disimpan append-only di kolom JSONB.
type ReportComment struct {
	Text         string    `json:"text"`
	SupervisorID uuid.UUID `json:"supervisor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// WeeklyReportModel — laporan kemajuan mingguan tim.
// Invariant: maksimal satu laporan per (team, week), di-upsert dengan
// composite key itu.
type WeeklyReportModel struct {
	WeeklyReportID          uuid.UUID      `gorm:"column:weekly_report_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"weekly_report_id"`
	WeeklyReportTeamID      uuid.UUID      `gorm:"column:weekly_report_team_id;type:uuid;not null;uniqueIndex:idx_report_team_week;index" json:"weekly_report_team_id"`
	WeeklyReportWeek        string         `gorm:"column:weekly_report_week;type:varchar(8);not null;uniqueIndex:idx_report_team_week" json:"weekly_report_week"` // YYYY-Www
	WeeklyReportTaskIDs     pq.StringArray `gorm:"column:weekly_report_task_ids;type:text[]" json:"weekly_report_task_ids"`
	WeeklyReportProgress    int            `gorm:"column:weekly_report_progress;not null;default:0" json:"weekly_report_progress"` // 0-100
	WeeklyReportPhotos      pq.StringArray `gorm:"column:weekly_report_photos;type:text[]" json:"weekly_report_photos"`
	WeeklyReportDescription *string        `gorm:"column:weekly_report_description;type:text" json:"weekly_report_description,omitempty"`
	WeeklyReportStatus      string         `gorm:"column:weekly_report_status;type:varchar(20);not null;default:'draft'" json:"weekly_report_status"`
	WeeklyReportComments    datatypes.JSON `gorm:"column:weekly_report_comments;type:jsonb;not null;default:'[]'" json:"weekly_report_comments"`
	WeeklyReportSubmittedAt *time.Time     `gorm:"column:weekly_report_submitted_at" json:"weekly_report_submitted_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WeeklyReportModel) TableName() string {
	return "weekly_reports"
}
