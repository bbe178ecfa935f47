package service

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"magangku_backend/internals/features/attendance/dto"
	"magangku_backend/internals/features/attendance/model"
	helper "magangku_backend/internals/helpers"
)

// BuildWeeklySummary bangun rekap mingguan dari record yang sudah di-fetch.
// Pure function supaya gampang dites tanpa DB.
//
// Aturannya:
//   - bucket harian urut tanggal naik (Senin→Minggu), hanya record yang
//     tanggalnya persis di rentang yang masuk;
//   - totals dibangun dari record yang ADA saja (mahasiswa tanpa record
//     minggu itu tidak muncul), urut kemunculan pertama;
//   - present_count = jumlah tanggal distinct, last_check_in = timestamp
//     paling akhir minggu itu.
func BuildWeeklySummary(
	teamID uuid.UUID,
	rng helper.WeekRange,
	records []model.AttendanceModel,
	names map[uuid.UUID]string,
) dto.WeeklyAttendanceSummary {
	byDate := make(map[string][]dto.DayAttendee, 7)
	inRange := make(map[string]bool, 7)
	for _, d := range rng.Dates {
		inRange[d] = true
	}

	totalsOrder := make([]uuid.UUID, 0)
	seenDates := make(map[uuid.UUID]map[string]bool)
	totalsByUser := make(map[uuid.UUID]*dto.StudentTotal)

	for _, rec := range records {
		if !inRange[rec.AttendanceDate] {
			continue
		}

		byDate[rec.AttendanceDate] = append(byDate[rec.AttendanceDate], dto.DayAttendee{
			UserID:    rec.AttendanceUserID,
			Name:      names[rec.AttendanceUserID],
			Status:    rec.AttendanceStatus,
			Timestamp: rec.AttendanceTimestamp,
		})

		total, ok := totalsByUser[rec.AttendanceUserID]
		if !ok {
			total = &dto.StudentTotal{
				UserID: rec.AttendanceUserID,
				Name:   names[rec.AttendanceUserID],
			}
			totalsByUser[rec.AttendanceUserID] = total
			totalsOrder = append(totalsOrder, rec.AttendanceUserID)
			seenDates[rec.AttendanceUserID] = make(map[string]bool)
		}
		if !seenDates[rec.AttendanceUserID][rec.AttendanceDate] {
			seenDates[rec.AttendanceUserID][rec.AttendanceDate] = true
			total.PresentCount++
		}
		if rec.AttendanceTimestamp.After(total.LastCheckIn) {
			total.LastCheckIn = rec.AttendanceTimestamp
		}
	}

	days := make([]dto.DailyBucket, 0, 7)
	for _, date := range rng.Dates {
		attendees := byDate[date]
		if attendees == nil {
			attendees = []dto.DayAttendee{}
		}
		days = append(days, dto.DailyBucket{Date: date, Attendees: attendees})
	}

	totals := make([]dto.StudentTotal, 0, len(totalsOrder))
	for _, id := range totalsOrder {
		totals = append(totals, *totalsByUser[id])
	}

	return dto.WeeklyAttendanceSummary{
		TeamID:    teamID,
		Week:      rng.Label,
		StartDate: rng.StartDate,
		EndDate:   rng.EndDate,
		Days:      days,
		Totals:    totals,
	}
}

// RosterRow — baris CSV per anggota roster.
type RosterRow struct {
	UserID uuid.UUID
	Name   string
}

// BuildWeeklyCSV render rekap jadi CSV: header
// "Student,<tgl1>,...,<tgl7>,Total", satu baris per anggota roster
// (termasuk yang tanpa record sama sekali → semua Absent).
func BuildWeeklyCSV(summary dto.WeeklyAttendanceSummary, roster []RosterRow) string {
	presentOn := make(map[uuid.UUID]map[string]bool)
	for _, day := range summary.Days {
		for _, a := range day.Attendees {
			if presentOn[a.UserID] == nil {
				presentOn[a.UserID] = make(map[string]bool)
			}
			presentOn[a.UserID][day.Date] = true
		}
	}

	var b strings.Builder
	b.WriteString("Student")
	for _, day := range summary.Days {
		b.WriteString(",")
		b.WriteString(day.Date)
	}
	b.WriteString(",Total\n")

	for _, member := range roster {
		b.WriteString(csvEscape(member.Name))
		count := 0
		for _, day := range summary.Days {
			b.WriteString(",")
			if presentOn[member.UserID][day.Date] {
				b.WriteString("Present")
				count++
			} else {
				b.WriteString("Absent")
			}
		}
		b.WriteString(",")
		b.WriteString(strconv.Itoa(count))
		b.WriteString("\n")
	}
	return b.String()
}

func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}
