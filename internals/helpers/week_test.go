package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWeekRange(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		wantStart string
		wantEnd   string
	}{
		{
			// Contoh kanonik: anchor 29 Jan 2024 jatuh tepat di Senin
			name:      "2024-W05 mulai Senin 29 Januari",
			label:     "2024-W05",
			wantStart: "2024-01-29",
			wantEnd:   "2024-02-04",
		},
		{
			// 1 Jan 2024 adalah Senin, W01 mulai hari itu juga
			name:      "tahun yang dibuka hari Senin",
			label:     "2024-W01",
			wantStart: "2024-01-01",
			wantEnd:   "2024-01-07",
		},
		{
			// 1 Jan 2021 Jumat: anchor maju ke Senin berikutnya
			name:      "anchor Jumat maju ke Senin depan",
			label:     "2021-W01",
			wantStart: "2021-01-04",
			wantEnd:   "2021-01-10",
		},
		{
			// 1 Jan 2022 Sabtu
			name:      "anchor Sabtu maju ke Senin depan",
			label:     "2022-W01",
			wantStart: "2022-01-03",
			wantEnd:   "2022-01-09",
		},
		{
			// 1 Jan 2023 Minggu (dow=0): cabang mundur menghasilkan +1 hari
			name:      "anchor Minggu digeser ke Senin 2 Januari",
			label:     "2023-W01",
			wantStart: "2023-01-02",
			wantEnd:   "2023-01-08",
		},
		{
			// anchor Kamis (5 Mar 2026) mundur ke Senin minggu yang sama
			name:      "anchor Kamis mundur ke Senin",
			label:     "2026-W10",
			wantStart: "2026-03-02",
			wantEnd:   "2026-03-08",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := ResolveWeekRange(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, rng.StartDate)
			assert.Equal(t, tt.wantEnd, rng.EndDate)
			require.Len(t, rng.Dates, 7)
			assert.Equal(t, rng.StartDate, rng.Dates[0])
			assert.Equal(t, rng.EndDate, rng.Dates[6])

			// 7 tanggal harus berurutan tanpa lubang
			prev, err := time.Parse("2006-01-02", rng.Dates[0])
			require.NoError(t, err)
			for _, d := range rng.Dates[1:] {
				cur, err := time.Parse("2006-01-02", d)
				require.NoError(t, err)
				assert.Equal(t, prev.AddDate(0, 0, 1), cur)
				prev = cur
			}
			// mulai hari Senin
			start, _ := time.Parse("2006-01-02", rng.StartDate)
			assert.Equal(t, time.Monday, start.Weekday())
		})
	}
}

func TestResolveWeekRangeRejectsBadLabels(t *testing.T) {
	bad := []string{
		"",
		"2024W05",
		"2024-05",
		"2024-w05", // huruf kecil tidak diterima, Normalize() di DTO yang meng-uppercase
		"2024-W5",
		"2024-W00",
		"2024-W54",
		"24-W05",
		"2024-W05x",
	}
	for _, label := range bad {
		_, err := ResolveWeekRange(label)
		assert.ErrorIs(t, err, ErrInvalidWeekLabel, "label %q", label)
	}
}

func TestResolveWeekRangeTrimsWhitespace(t *testing.T) {
	rng, err := ResolveWeekRange("  2024-W05  ")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-29", rng.StartDate)
}

func TestWeekLabelFor(t *testing.T) {
	mk := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("tanggal test %q: %v", s, err)
		}
		return d
	}

	assert.Equal(t, "2024-W05", WeekLabelFor(mk("2024-01-29")))
	assert.Equal(t, "2024-W05", WeekLabelFor(mk("2024-02-04")))
	assert.Equal(t, "2024-W01", WeekLabelFor(mk("2024-01-01")))
	// awal Januari 2021 masuk minggu terakhir 2020
	assert.Equal(t, "2020-W53", WeekLabelFor(mk("2021-01-02")))
}

func TestWeekLabelForRoundTrip(t *testing.T) {
	// setiap tanggal dalam rentang sebuah label harus kembali ke label itu
	rng, err := ResolveWeekRange("2025-W20")
	require.NoError(t, err)
	for _, d := range rng.Dates {
		day, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		assert.Equal(t, "2025-W20", WeekLabelFor(day), "tanggal %s", d)
	}
}
