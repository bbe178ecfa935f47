package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"magangku_backend/internals/features/reports/model"
)

var validStatuses = map[string]bool{
	model.ReportStatusDraft:             true,
	model.ReportStatusSubmitted:         true,
	model.ReportStatusApproved:          true,
	model.ReportStatusRevisionRequested: true,
}

// IsValidStatus melaporkan apakah s adalah status laporan yang dikenal.
func IsValidStatus(s string) bool {
	return validStatuses[s]
}

// EffectiveStatus menghitung status hasil upsert. Status hanya berubah
// kalau request mengirimnya secara eksplisit; kalau tidak, status lama
// dipertahankan (atau draft untuk laporan baru).
func EffectiveStatus(prior string, requested *string) string {
	if requested != nil && *requested != "" {
		return *requested
	}
	if prior == "" {
		return model.ReportStatusDraft
	}
	return prior
}

// NextSubmittedAt menentukan stempel waktu submit setelah transisi.
// Saat status efektif submitted, stempel di-refresh ke waktu sekarang
// (submit ulang menggeser stempel); untuk status lain stempel lama
// dipertahankan, tidak pernah di-clear.
func NextSubmittedAt(prior *time.Time, effective string, now time.Time) *time.Time {
	if effective == model.ReportStatusSubmitted {
		return &now
	}
	return prior
}

// UpsertPatch membawa field upsert laporan. Slice nil dan pointer nil
// berarti field tidak dikirim, jadi nilai lama tidak disentuh.
type UpsertPatch struct {
	TaskIDs     []string
	Progress    *int
	Photos      []string
	Description *string
	Status      *string
}

// NewWeeklyReport membangun laporan pertama untuk satu (team, week).
func NewWeeklyReport(teamID uuid.UUID, week string, patch UpsertPatch, now time.Time) *model.WeeklyReportModel {
	report := &model.WeeklyReportModel{
		WeeklyReportTeamID:      teamID,
		WeeklyReportWeek:        week,
		WeeklyReportTaskIDs:     pq.StringArray(patch.TaskIDs),
		WeeklyReportPhotos:      pq.StringArray(patch.Photos),
		WeeklyReportDescription: patch.Description,
		WeeklyReportComments:    datatypes.JSON("[]"),
	}
	if patch.Progress != nil {
		report.WeeklyReportProgress = *patch.Progress
	}
	report.WeeklyReportStatus = EffectiveStatus("", patch.Status)
	report.WeeklyReportSubmittedAt = NextSubmittedAt(nil, report.WeeklyReportStatus, now)
	return report
}

// ApplyUpsert mem-patch laporan yang sudah ada dengan field yang dikirim
// saja. Upsert kedua untuk (team, week) yang sama selalu lewat sini, tidak
// pernah membuat record kedua.
func ApplyUpsert(report *model.WeeklyReportModel, patch UpsertPatch, now time.Time) {
	if patch.TaskIDs != nil {
		report.WeeklyReportTaskIDs = pq.StringArray(patch.TaskIDs)
	}
	if patch.Progress != nil {
		report.WeeklyReportProgress = *patch.Progress
	}
	if patch.Photos != nil {
		report.WeeklyReportPhotos = pq.StringArray(patch.Photos)
	}
	if patch.Description != nil {
		report.WeeklyReportDescription = patch.Description
	}
	report.WeeklyReportStatus = EffectiveStatus(report.WeeklyReportStatus, patch.Status)
	report.WeeklyReportSubmittedAt = NextSubmittedAt(report.WeeklyReportSubmittedAt, report.WeeklyReportStatus, now)
}

// ApplySupervisorComment menambahkan satu komentar supervisor dan memaksa
// status kembali ke revision_requested, apapun status sebelumnya.
func ApplySupervisorComment(report *model.WeeklyReportModel, c model.ReportComment) error {
	updated, err := AppendComment(report.WeeklyReportComments, c)
	if err != nil {
		return err
	}
	report.WeeklyReportComments = updated
	report.WeeklyReportStatus = model.ReportStatusRevisionRequested
	return nil
}

// CanSubmit melaporkan apakah laporan boleh disubmit dari status saat ini.
// Submit ulang setelah revision_requested diperbolehkan.
func CanSubmit(status string) bool {
	return status == model.ReportStatusDraft || status == model.ReportStatusRevisionRequested
}

// CanApprove melaporkan apakah laporan boleh di-approve dari status saat
// ini. Approve langsung dari revision_requested diperbolehkan.
func CanApprove(status string) bool {
	return status == model.ReportStatusSubmitted || status == model.ReportStatusRevisionRequested
}

// AppendComment menambahkan satu komentar ke kolom JSONB append-only.
// Komentar lama tidak pernah dimutasi atau dihapus.
func AppendComment(raw datatypes.JSON, c model.ReportComment) (datatypes.JSON, error) {
	comments, err := DecodeComments(raw)
	if err != nil {
		return nil, err
	}
	comments = append(comments, c)
	out, err := json.Marshal(comments)
	if err != nil {
		return nil, fmt.Errorf("gagal encode komentar: %w", err)
	}
	return datatypes.JSON(out), nil
}

// DecodeComments membaca kolom JSONB menjadi slice komentar. Kolom kosong
// atau NULL dibaca sebagai slice kosong.
func DecodeComments(raw datatypes.JSON) ([]model.ReportComment, error) {
	if len(raw) == 0 {
		return []model.ReportComment{}, nil
	}
	var comments []model.ReportComment
	if err := json.Unmarshal(raw, &comments); err != nil {
		return nil, fmt.Errorf("kolom komentar korup: %w", err)
	}
	if comments == nil {
		comments = []model.ReportComment{}
	}
	return comments, nil
}
