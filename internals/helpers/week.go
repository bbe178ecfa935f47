package helper

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Label minggu: "YYYY-Www", mis. "2024-W05".
var weekLabelRe = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

var ErrInvalidWeekLabel = errors.New("label minggu tidak valid (format: YYYY-Www, minggu 01-53)")

// WeekRange hasil resolve satu label minggu: Senin s/d Minggu, 7 tanggal.
type WeekRange struct {
	Label     string   `json:"week"`
	StartDate string   `json:"start_date"` // Senin
	EndDate   string   `json:"end_date"`   // Minggu
	Dates     []string `json:"dates"`      // 7 tanggal YYYY-MM-DD berurutan
}

// ResolveWeekRange konversi label "YYYY-Www" menjadi rentang 7 hari.
//
// Perhitungannya memakai aturan aproksimasi yang sama dengan data minggu yang
// sudah tersimpan: anchor = 1 Januari + (minggu-1)*7 hari; kalau anchor jatuh
// di Senin..Kamis (Minggu=0) mundur ke Senin minggu itu, selain itu maju ke
// Senin berikutnya. Ini BUKAN penomoran ISO-8601 murni (ISO menjangkar pada
// minggu yang memuat Kamis pertama) — jangan "diperbaiki" tanpa migrasi label
// yang sudah ada.
func ResolveWeekRange(label string) (WeekRange, error) {
	m := weekLabelRe.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return WeekRange{}, ErrInvalidWeekLabel
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	if week < 1 || week > 53 {
		return WeekRange{}, ErrInvalidWeekLabel
	}

	anchor := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, (week-1)*7)

	dow := int(anchor.Weekday()) // Minggu=0 .. Sabtu=6
	var start time.Time
	if dow <= 4 {
		start = anchor.AddDate(0, 0, -(dow - 1))
	} else {
		start = anchor.AddDate(0, 0, 8-dow)
	}

	dates := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format("2006-01-02"))
	}

	return WeekRange{
		Label:     strings.TrimSpace(label),
		StartDate: dates[0],
		EndDate:   dates[6],
		Dates:     dates,
	}, nil
}

// WeekLabelFor mengembalikan label minggu yang rentangnya memuat tanggal t,
// konsisten dengan aturan aproksimasi ResolveWeekRange.
func WeekLabelFor(t time.Time) string {
	date := t.Format("2006-01-02")
	// awal Januari bisa jatuh di minggu milik tahun sebelumnya, akhir
	// Desember bisa masuk W01 tahun berikutnya
	for _, year := range []int{t.Year(), t.Year() - 1, t.Year() + 1} {
		for w := 1; w <= 53; w++ {
			label := formatWeekLabel(year, w)
			rng, err := ResolveWeekRange(label)
			if err != nil {
				continue
			}
			if date >= rng.StartDate && date <= rng.EndDate {
				return label
			}
		}
	}
	return formatWeekLabel(t.Year(), 1)
}

func formatWeekLabel(year, week int) string {
	w := strconv.Itoa(week)
	if week < 10 {
		w = "0" + w
	}
	return strconv.Itoa(year) + "-W" + w
}
