package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magangku_backend/internals/features/attendance/dto"
	"magangku_backend/internals/features/attendance/model"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

func TestApplyCheckInFirstOfTheDay(t *testing.T) {
	now := time.Date(2024, 1, 30, 7, 45, 0, 0, time.UTC)

	record, created := ApplyCheckIn(nil, testTeamID, budiID, dto.CheckInRequest{
		Date:   "2024-01-30",
		GPSLat: f64(-6.2),
		GPSLng: f64(106.8),
	}, str("https://cdn.example.com/absen.webp"), now)

	assert.True(t, created)
	assert.Equal(t, testTeamID, record.AttendanceTeamID)
	assert.Equal(t, budiID, record.AttendanceUserID)
	assert.Equal(t, "2024-01-30", record.AttendanceDate)
	assert.Equal(t, now, record.AttendanceTimestamp)
	// status kosong default ke present
	assert.Equal(t, model.AttendanceStatusPresent, record.AttendanceStatus)
	require.NotNil(t, record.AttendanceGPSLat)
	assert.Equal(t, -6.2, *record.AttendanceGPSLat)
}

func TestApplyCheckInSecondSameDayPatchesSameRecord(t *testing.T) {
	first := time.Date(2024, 1, 30, 7, 45, 0, 0, time.UTC)
	second := first.Add(5 * time.Hour)

	existing, _ := ApplyCheckIn(nil, testTeamID, budiID, dto.CheckInRequest{
		Date:   "2024-01-30",
		GPSLat: f64(-6.2),
		GPSLng: f64(106.8),
	}, str("https://cdn.example.com/pagi.webp"), first)

	// check-in kedua hari yang sama: record yang SAMA di-refresh
	record, created := ApplyCheckIn(existing, testTeamID, budiID, dto.CheckInRequest{
		Date:   "2024-01-30",
		Status: model.AttendanceStatusPermission,
		Excuse: str("izin ke puskesmas"),
	}, str("https://cdn.example.com/siang.webp"), second)

	assert.False(t, created)
	assert.Same(t, existing, record)
	assert.Equal(t, second, record.AttendanceTimestamp)
	assert.Equal(t, model.AttendanceStatusPermission, record.AttendanceStatus)
	require.NotNil(t, record.AttendanceExcuse)
	assert.Equal(t, "izin ke puskesmas", *record.AttendanceExcuse)
	// foto baru menimpa yang lama
	require.NotNil(t, record.AttendancePhotoURL)
	assert.Equal(t, "https://cdn.example.com/siang.webp", *record.AttendancePhotoURL)
	// GPS tidak dikirim di check-in kedua: nilai pagi bertahan
	require.NotNil(t, record.AttendanceGPSLat)
	assert.Equal(t, -6.2, *record.AttendanceGPSLat)
}

func TestApplyCheckInSecondWithoutPhotoKeepsOld(t *testing.T) {
	first := time.Date(2024, 1, 30, 7, 45, 0, 0, time.UTC)

	existing, _ := ApplyCheckIn(nil, testTeamID, budiID, dto.CheckInRequest{
		Date: "2024-01-30",
	}, str("https://cdn.example.com/pagi.webp"), first)

	record, created := ApplyCheckIn(existing, testTeamID, budiID, dto.CheckInRequest{
		Date: "2024-01-30",
	}, nil, first.Add(time.Hour))

	assert.False(t, created)
	require.NotNil(t, record.AttendancePhotoURL)
	assert.Equal(t, "https://cdn.example.com/pagi.webp", *record.AttendancePhotoURL)
}
