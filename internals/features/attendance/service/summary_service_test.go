package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magangku_backend/internals/features/attendance/model"
	helper "magangku_backend/internals/helpers"
)

var (
	testTeamID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	budiID     = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	sitiID     = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	andiID     = uuid.MustParse("44444444-4444-4444-4444-444444444444")
)

func testNames() map[uuid.UUID]string {
	return map[uuid.UUID]string{
		budiID: "Budi Santoso",
		sitiID: "Siti Rahma",
		andiID: "Andi Wijaya",
	}
}

func record(userID uuid.UUID, date string, ts time.Time, status string) model.AttendanceModel {
	return model.AttendanceModel{
		AttendanceTeamID:    testTeamID,
		AttendanceUserID:    userID,
		AttendanceDate:      date,
		AttendanceTimestamp: ts,
		AttendanceStatus:    status,
	}
}

func weekRange(t *testing.T, label string) helper.WeekRange {
	t.Helper()
	rng, err := helper.ResolveWeekRange(label)
	require.NoError(t, err)
	return rng
}

func TestBuildWeeklySummaryBucketsByExactDate(t *testing.T) {
	rng := weekRange(t, "2024-W05") // 2024-01-29 .. 2024-02-04
	ts := time.Date(2024, 1, 29, 8, 0, 0, 0, time.UTC)

	records := []model.AttendanceModel{
		record(budiID, "2024-01-29", ts, model.AttendanceStatusPresent),
		record(sitiID, "2024-01-30", ts.AddDate(0, 0, 1), model.AttendanceStatusPermission),
		// di luar rentang: harus diabaikan total
		record(budiID, "2024-02-05", ts.AddDate(0, 0, 7), model.AttendanceStatusPresent),
		record(budiID, "2024-01-28", ts.AddDate(0, 0, -1), model.AttendanceStatusPresent),
	}

	summary := BuildWeeklySummary(testTeamID, rng, records, testNames())

	assert.Equal(t, "2024-W05", summary.Week)
	assert.Equal(t, "2024-01-29", summary.StartDate)
	assert.Equal(t, "2024-02-04", summary.EndDate)
	require.Len(t, summary.Days, 7)

	// Senin: hanya Budi
	require.Len(t, summary.Days[0].Attendees, 1)
	assert.Equal(t, "Budi Santoso", summary.Days[0].Attendees[0].Name)
	// Selasa: hanya Siti, status permission ikut terbawa
	require.Len(t, summary.Days[1].Attendees, 1)
	assert.Equal(t, model.AttendanceStatusPermission, summary.Days[1].Attendees[0].Status)
	// sisa hari kosong tapi bukan nil (JSON harus [] bukan null)
	for _, day := range summary.Days[2:] {
		assert.NotNil(t, day.Attendees)
		assert.Empty(t, day.Attendees)
	}

	// record di luar rentang tidak mempengaruhi total
	require.Len(t, summary.Totals, 2)
	assert.Equal(t, 1, summary.Totals[0].PresentCount)
	assert.Equal(t, 1, summary.Totals[1].PresentCount)
}

func TestBuildWeeklySummaryTotalsOrderAndDistinctDates(t *testing.T) {
	rng := weekRange(t, "2024-W05")
	base := time.Date(2024, 1, 29, 7, 30, 0, 0, time.UTC)

	// Siti muncul duluan di record stream, walau Budi absen lebih banyak
	records := []model.AttendanceModel{
		record(sitiID, "2024-01-29", base, model.AttendanceStatusPresent),
		record(budiID, "2024-01-29", base.Add(time.Hour), model.AttendanceStatusPresent),
		record(budiID, "2024-01-30", base.AddDate(0, 0, 1), model.AttendanceStatusPresent),
		record(budiID, "2024-01-31", base.AddDate(0, 0, 2), model.AttendanceStatusPresent),
		// duplikat tanggal yang sama tidak menggandakan present_count
		record(sitiID, "2024-01-29", base.Add(6*time.Hour), model.AttendanceStatusPresent),
	}

	summary := BuildWeeklySummary(testTeamID, rng, records, testNames())

	require.Len(t, summary.Totals, 2)
	assert.Equal(t, sitiID, summary.Totals[0].UserID) // urut kemunculan pertama
	assert.Equal(t, budiID, summary.Totals[1].UserID)

	assert.Equal(t, 1, summary.Totals[0].PresentCount) // tanggal distinct, bukan jumlah record
	assert.Equal(t, 3, summary.Totals[1].PresentCount)

	// last_check_in pakai timestamp paling akhir
	assert.Equal(t, base.Add(6*time.Hour), summary.Totals[0].LastCheckIn)
	assert.Equal(t, base.AddDate(0, 0, 2), summary.Totals[1].LastCheckIn)
}

func TestBuildWeeklySummaryEmptyRecords(t *testing.T) {
	rng := weekRange(t, "2024-W05")
	summary := BuildWeeklySummary(testTeamID, rng, nil, testNames())

	require.Len(t, summary.Days, 7)
	assert.Empty(t, summary.Totals)
	assert.NotNil(t, summary.Totals)
}

func TestBuildWeeklyCSVSeedsFullRoster(t *testing.T) {
	rng := weekRange(t, "2024-W05")
	base := time.Date(2024, 1, 29, 8, 0, 0, 0, time.UTC)
	records := []model.AttendanceModel{
		record(budiID, "2024-01-29", base, model.AttendanceStatusPresent),
		record(budiID, "2024-01-31", base.AddDate(0, 0, 2), model.AttendanceStatusPresent),
	}
	summary := BuildWeeklySummary(testTeamID, rng, records, testNames())

	roster := []RosterRow{
		{UserID: budiID, Name: "Budi Santoso"},
		{UserID: sitiID, Name: "Siti Rahma"},
		{UserID: andiID, Name: "Andi Wijaya"},
	}
	csv := BuildWeeklyCSV(summary, roster)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 4) // header + 3 anggota roster

	assert.Equal(t,
		"Student,2024-01-29,2024-01-30,2024-01-31,2024-02-01,2024-02-02,2024-02-03,2024-02-04,Total",
		lines[0])
	assert.Equal(t,
		"Budi Santoso,Present,Absent,Present,Absent,Absent,Absent,Absent,2",
		lines[1])
	// anggota tanpa record sama sekali tetap dapat baris penuh Absent
	assert.Equal(t,
		"Siti Rahma,Absent,Absent,Absent,Absent,Absent,Absent,Absent,0",
		lines[2])
	assert.Equal(t,
		"Andi Wijaya,Absent,Absent,Absent,Absent,Absent,Absent,Absent,0",
		lines[3])
}

func TestBuildWeeklyCSVEscapesNames(t *testing.T) {
	rng := weekRange(t, "2024-W05")
	summary := BuildWeeklySummary(testTeamID, rng, nil, nil)

	roster := []RosterRow{{UserID: budiID, Name: `Budi "Bud" Santoso, Jr.`}}
	csv := BuildWeeklyCSV(summary, roster)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], `"Budi ""Bud"" Santoso, Jr."`), "nama harus di-quote: %s", lines[1])
}
