package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendanceStatusPresent    = "present"
	AttendanceStatusPermission = "permission"
	AttendanceStatusAlpha      = "alpha"
)

// AttendanceModel — absensi harian per mahasiswa.
// Invariant: satu record per (user, tanggal); check-in kedua di hari yang
// sama meng-update record lama, bukan membuat duplikat.
type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	AttendanceTeamID    uuid.UUID `gorm:"column:attendance_team_id;type:uuid;not null;index:idx_attendance_team_date" json:"attendance_team_id"`
	AttendanceUserID    uuid.UUID `gorm:"column:attendance_user_id;type:uuid;not null;uniqueIndex:idx_attendance_user_date" json:"attendance_user_id"`
	AttendanceDate      string    `gorm:"column:attendance_date;type:varchar(10);not null;uniqueIndex:idx_attendance_user_date;index:idx_attendance_team_date" json:"attendance_date"` // YYYY-MM-DD
	AttendanceTimestamp time.Time `gorm:"column:attendance_timestamp;not null" json:"attendance_timestamp"`
	AttendanceStatus    string    `gorm:"column:attendance_status;type:varchar(20);not null;default:'present'" json:"attendance_status"`
	AttendanceExcuse    *string   `gorm:"column:attendance_excuse;type:text" json:"attendance_excuse,omitempty"`
	AttendanceGPSLat    *float64  `gorm:"column:attendance_gps_lat" json:"attendance_gps_lat,omitempty"`
	AttendanceGPSLng    *float64  `gorm:"column:attendance_gps_lng" json:"attendance_gps_lng,omitempty"`
	AttendancePhotoURL  *string   `gorm:"column:attendance_photo_url;type:text" json:"attendance_photo_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
