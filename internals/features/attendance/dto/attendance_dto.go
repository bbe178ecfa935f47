package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CheckInRequest struct {
	TeamID   string   `json:"team_id" form:"team_id" validate:"required,uuid4"`
	Date     string   `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Status   string   `json:"status" form:"status" validate:"omitempty,oneof=present permission alpha"`
	Excuse   *string  `json:"excuse,omitempty" form:"excuse"`
	GPSLat   *float64 `json:"gps_lat,omitempty" form:"gps_lat"`
	GPSLng   *float64 `json:"gps_lng,omitempty" form:"gps_lng"`
	PhotoURL *string  `json:"photo_url,omitempty" form:"photo_url"`
}

func (r *CheckInRequest) Normalize() {
	r.Status = strings.TrimSpace(strings.ToLower(r.Status))
	if r.Status == "" {
		r.Status = "present"
	}
	if r.Excuse != nil {
		v := strings.TrimSpace(*r.Excuse)
		r.Excuse = &v
	}
}

/* =======================================================
   WEEKLY SUMMARY (derived, tidak dipersist)
   ======================================================= */

// DayAttendee — satu mahasiswa yang punya record absensi di tanggal tsb.
type DayAttendee struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// DailyBucket — satu hari dalam minggu, berisi daftar attendee hari itu.
type DailyBucket struct {
	Date      string        `json:"date"`
	Attendees []DayAttendee `json:"attendees"`
}

// StudentTotal — rekap per mahasiswa selama satu minggu.
// Hanya mahasiswa yang PUNYA record yang muncul di sini.
type StudentTotal struct {
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	PresentCount int       `json:"present_count"`
	LastCheckIn  time.Time `json:"last_check_in"`
}

type WeeklyAttendanceSummary struct {
	TeamID    uuid.UUID      `json:"team_id"`
	Week      string         `json:"week"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Days      []DailyBucket  `json:"days"`
	Totals    []StudentTotal `json:"totals"`
}
