package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"magangku_backend/internals/features/reports/model"
)

func strPtr(s string) *string { return &s }

func TestEffectiveStatus(t *testing.T) {
	tests := []struct {
		name      string
		prior     string
		requested *string
		want      string
	}{
		{"laporan baru tanpa status jadi draft", "", nil, model.ReportStatusDraft},
		{"laporan baru dengan status eksplisit", "", strPtr(model.ReportStatusSubmitted), model.ReportStatusSubmitted},
		{"update tanpa status mempertahankan status lama", model.ReportStatusSubmitted, nil, model.ReportStatusSubmitted},
		{"update dengan status eksplisit menimpa", model.ReportStatusDraft, strPtr(model.ReportStatusSubmitted), model.ReportStatusSubmitted},
		{"string kosong diperlakukan seperti tidak dikirim", model.ReportStatusRevisionRequested, strPtr(""), model.ReportStatusRevisionRequested},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveStatus(tt.prior, tt.requested))
		})
	}
}

func TestNextSubmittedAt(t *testing.T) {
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)

	t.Run("stempel pertama saat jadi submitted", func(t *testing.T) {
		got := NextSubmittedAt(nil, model.ReportStatusSubmitted, now)
		require.NotNil(t, got)
		assert.Equal(t, now, *got)
	})

	t.Run("submit ulang me-refresh stempel", func(t *testing.T) {
		got := NextSubmittedAt(&earlier, model.ReportStatusSubmitted, now)
		require.NotNil(t, got)
		assert.Equal(t, now, *got)
	})

	t.Run("draft tidak pernah terstempel", func(t *testing.T) {
		assert.Nil(t, NextSubmittedAt(nil, model.ReportStatusDraft, now))
	})

	t.Run("kembali ke revisi tidak menghapus stempel", func(t *testing.T) {
		got := NextSubmittedAt(&earlier, model.ReportStatusRevisionRequested, now)
		require.NotNil(t, got)
		assert.Equal(t, earlier, *got)
	})
}

func TestSubmitApproveTransitions(t *testing.T) {
	assert.True(t, CanSubmit(model.ReportStatusDraft))
	assert.True(t, CanSubmit(model.ReportStatusRevisionRequested))
	assert.False(t, CanSubmit(model.ReportStatusSubmitted))
	assert.False(t, CanSubmit(model.ReportStatusApproved))

	assert.True(t, CanApprove(model.ReportStatusSubmitted))
	assert.True(t, CanApprove(model.ReportStatusRevisionRequested))
	assert.False(t, CanApprove(model.ReportStatusDraft))
	assert.False(t, CanApprove(model.ReportStatusApproved))
}

func TestUpsertSameWeekPatchesFirstReport(t *testing.T) {
	teamID := uuid.MustParse("66666666-6666-6666-6666-666666666666")
	t1 := time.Date(2024, 1, 30, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	// save pertama: tanpa status, jadi draft tanpa stempel
	progress := 40
	report := NewWeeklyReport(teamID, "2024-W05", UpsertPatch{
		TaskIDs:  []string{"11111111-1111-1111-1111-111111111111"},
		Progress: &progress,
	}, t1)

	assert.Equal(t, model.ReportStatusDraft, report.WeeklyReportStatus)
	assert.Nil(t, report.WeeklyReportSubmittedAt)
	assert.Equal(t, 40, report.WeeklyReportProgress)

	// save kedua untuk (team, week) yang sama: laporan yang SAMA di-patch,
	// bukan record baru
	progress2 := 75
	desc := "Minggu kedua pemasangan instalasi"
	ApplyUpsert(report, UpsertPatch{
		Progress:    &progress2,
		Description: &desc,
		Status:      strPtr(model.ReportStatusSubmitted),
	}, t2)

	assert.Equal(t, teamID, report.WeeklyReportTeamID)
	assert.Equal(t, "2024-W05", report.WeeklyReportWeek)
	assert.Equal(t, 75, report.WeeklyReportProgress)
	assert.Equal(t, &desc, report.WeeklyReportDescription)
	// task ids tidak dikirim di save kedua: nilai lama bertahan
	require.Len(t, report.WeeklyReportTaskIDs, 1)
	assert.Equal(t, model.ReportStatusSubmitted, report.WeeklyReportStatus)
	require.NotNil(t, report.WeeklyReportSubmittedAt)
	assert.Equal(t, t2, *report.WeeklyReportSubmittedAt)
}

func TestNewWeeklyReportExplicitSubmitted(t *testing.T) {
	teamID := uuid.MustParse("66666666-6666-6666-6666-666666666666")
	now := time.Date(2024, 1, 30, 9, 0, 0, 0, time.UTC)

	report := NewWeeklyReport(teamID, "2024-W05", UpsertPatch{
		Status: strPtr(model.ReportStatusSubmitted),
	}, now)

	assert.Equal(t, model.ReportStatusSubmitted, report.WeeklyReportStatus)
	require.NotNil(t, report.WeeklyReportSubmittedAt)
	assert.Equal(t, now, *report.WeeklyReportSubmittedAt)
	// kolom JSONB komentar mulai dari array kosong, bukan NULL
	comments, err := DecodeComments(report.WeeklyReportComments)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestApplySupervisorCommentForcesRevision(t *testing.T) {
	supervisorID := uuid.MustParse("55555555-5555-5555-5555-555555555555")
	now := time.Date(2024, 2, 2, 14, 0, 0, 0, time.UTC)

	for _, prior := range []string{
		model.ReportStatusDraft,
		model.ReportStatusSubmitted,
		model.ReportStatusApproved,
		model.ReportStatusRevisionRequested,
	} {
		t.Run("dari status "+prior, func(t *testing.T) {
			submittedAt := now.Add(-time.Hour)
			report := &model.WeeklyReportModel{
				WeeklyReportStatus:      prior,
				WeeklyReportComments:    []byte("[]"),
				WeeklyReportSubmittedAt: &submittedAt,
			}
			err := ApplySupervisorComment(report, model.ReportComment{
				Text: "Tolong revisi bagian dokumentasi", SupervisorID: supervisorID, CreatedAt: now,
			})
			require.NoError(t, err)

			// status dipaksa ke revision_requested apapun status sebelumnya
			assert.Equal(t, model.ReportStatusRevisionRequested, report.WeeklyReportStatus)
			// stempel submit tidak di-clear
			require.NotNil(t, report.WeeklyReportSubmittedAt)

			comments, err := DecodeComments(report.WeeklyReportComments)
			require.NoError(t, err)
			require.Len(t, comments, 1)
			assert.Equal(t, "Tolong revisi bagian dokumentasi", comments[0].Text)
		})
	}
}

func TestAppendCommentIsAppendOnly(t *testing.T) {
	supervisorID := uuid.MustParse("55555555-5555-5555-5555-555555555555")
	t1 := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	raw, err := AppendComment(nil, model.ReportComment{
		Text: "Progress bagus, lanjutkan", SupervisorID: supervisorID, CreatedAt: t1,
	})
	require.NoError(t, err)

	raw, err = AppendComment(raw, model.ReportComment{
		Text: "Tolong lengkapi foto kegiatan", SupervisorID: supervisorID, CreatedAt: t2,
	})
	require.NoError(t, err)

	comments, err := DecodeComments(raw)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// urutan dan isi komentar pertama tidak berubah
	assert.Equal(t, "Progress bagus, lanjutkan", comments[0].Text)
	assert.Equal(t, t1, comments[0].CreatedAt.UTC())
	assert.Equal(t, "Tolong lengkapi foto kegiatan", comments[1].Text)
	assert.Equal(t, supervisorID, comments[1].SupervisorID)
}

func TestDecodeComments(t *testing.T) {
	t.Run("kolom kosong dibaca sebagai slice kosong", func(t *testing.T) {
		comments, err := DecodeComments(nil)
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	t.Run("JSON null dibaca sebagai slice kosong", func(t *testing.T) {
		comments, err := DecodeComments(datatypes.JSON("null"))
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	t.Run("JSON korup menghasilkan error", func(t *testing.T) {
		_, err := DecodeComments(datatypes.JSON("{bukan json"))
		assert.Error(t, err)
	})
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{
		model.ReportStatusDraft,
		model.ReportStatusSubmitted,
		model.ReportStatusApproved,
		model.ReportStatusRevisionRequested,
	} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("published"))
	assert.False(t, IsValidStatus(""))
}
