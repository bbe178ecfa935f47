package service

import (
	"time"

	"github.com/google/uuid"

	"magangku_backend/internals/features/attendance/dto"
	"magangku_backend/internals/features/attendance/model"
)

// ApplyCheckIn menerapkan satu check-in ke record (user, tanggal).
// existing nil berarti check-in pertama hari itu: record baru dibangun.
// Kalau record sudah ada, record yang SAMA di-refresh (timestamp, status,
// excuse; GPS dan foto hanya kalau dikirim), tidak pernah jadi duplikat.
// Balikan kedua true kalau record baru dibuat.
func ApplyCheckIn(
	existing *model.AttendanceModel,
	teamID, userID uuid.UUID,
	req dto.CheckInRequest,
	photoURL *string,
	now time.Time,
) (*model.AttendanceModel, bool) {
	status := req.Status
	if status == "" {
		status = model.AttendanceStatusPresent
	}

	if existing == nil {
		return &model.AttendanceModel{
			AttendanceTeamID:    teamID,
			AttendanceUserID:    userID,
			AttendanceDate:      req.Date,
			AttendanceTimestamp: now,
			AttendanceStatus:    status,
			AttendanceExcuse:    req.Excuse,
			AttendanceGPSLat:    req.GPSLat,
			AttendanceGPSLng:    req.GPSLng,
			AttendancePhotoURL:  photoURL,
		}, true
	}

	existing.AttendanceTimestamp = now
	existing.AttendanceStatus = status
	existing.AttendanceExcuse = req.Excuse
	if req.GPSLat != nil {
		existing.AttendanceGPSLat = req.GPSLat
	}
	if req.GPSLng != nil {
		existing.AttendanceGPSLng = req.GPSLng
	}
	if photoURL != nil {
		existing.AttendancePhotoURL = photoURL
	}
	return existing, false
}
