package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgramModel — satu periode program magang / studi lapangan.
type ProgramModel struct {
	ProgramID           uuid.UUID `gorm:"column:program_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"program_id"`
	ProgramName         string    `gorm:"column:program_name;type:varchar(150);not null" json:"program_name"`
	ProgramAcademicYear string    `gorm:"column:program_academic_year;type:varchar(9);not null" json:"program_academic_year"` // "2024/2025"
	ProgramDescription  string    `gorm:"column:program_description;type:text" json:"program_description"`
	ProgramStartDate    string    `gorm:"column:program_start_date;type:varchar(10);not null" json:"program_start_date"` // YYYY-MM-DD
	ProgramEndDate      string    `gorm:"column:program_end_date;type:varchar(10);not null" json:"program_end_date"`
	ProgramRegOpenDate  string    `gorm:"column:program_reg_open_date;type:varchar(10)" json:"program_reg_open_date"`
	ProgramRegCloseDate string    `gorm:"column:program_reg_close_date;type:varchar(10)" json:"program_reg_close_date"`
	ProgramQuota        int       `gorm:"column:program_quota;not null;default:0" json:"program_quota"`
	ProgramFee          int64     `gorm:"column:program_fee;not null;default:0" json:"program_fee"` // rupiah
	ProgramIsOpen       bool      `gorm:"column:program_is_open;not null;default:false" json:"program_is_open"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ProgramModel) TableName() string {
	return "programs"
}
