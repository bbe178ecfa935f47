package dto

import (
	"strings"

	"github.com/google/uuid"
)

// UpsertReportRequest dipakai untuk membuat sekaligus memperbarui laporan
// mingguan satu tim. Field pointer hanya diterapkan kalau dikirim.
type UpsertReportRequest struct {
	TeamID      uuid.UUID `json:"team_id" validate:"required"`
	Week        string    `json:"week" validate:"required"` // YYYY-Www
	TaskIDs     []string  `json:"task_ids" validate:"omitempty,dive,uuid4"`
	Progress    *int      `json:"progress" validate:"omitempty,min=0,max=100"`
	Photos      []string  `json:"photos" validate:"omitempty,dive,url"`
	Description *string   `json:"description" validate:"omitempty,max=5000"`
	Status      *string   `json:"status" validate:"omitempty,oneof=draft submitted"`
}

func (r *UpsertReportRequest) Normalize() {
	r.Week = strings.ToUpper(strings.TrimSpace(r.Week))
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
	if r.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &s
	}
}

// AddCommentRequest dipakai supervisor untuk menambah komentar. Menambah
// komentar selalu mengembalikan laporan ke revision_requested.
type AddCommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

func (r *AddCommentRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}

// ApproveReportRequest membawa komentar opsional saat approve.
type ApproveReportRequest struct {
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}
