package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RegistrationStatusPending  = "pending"
	RegistrationStatusApproved = "approved"
	RegistrationStatusRejected = "rejected"
)

// RegistrationModel — pendaftaran mahasiswa ke satu program.
// Satu email hanya boleh punya satu pendaftaran per program.
type RegistrationModel struct {
	RegistrationID        uuid.UUID  `gorm:"column:registration_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"registration_id"`
	RegistrationProgramID uuid.UUID  `gorm:"column:registration_program_id;type:uuid;not null;index;uniqueIndex:idx_registration_program_email" json:"registration_program_id"`
	RegistrationFullName  string     `gorm:"column:registration_full_name;type:varchar(100);not null" json:"registration_full_name"`
	RegistrationEmail     string     `gorm:"column:registration_email;type:varchar(255);not null;uniqueIndex:idx_registration_program_email" json:"registration_email"`
	RegistrationPhone     string     `gorm:"column:registration_phone;type:varchar(20);not null" json:"registration_phone"`
	RegistrationCampus    string     `gorm:"column:registration_campus;type:varchar(150);not null" json:"registration_campus"`
	RegistrationMajor     string     `gorm:"column:registration_major;type:varchar(150);not null" json:"registration_major"`
	RegistrationOrderID   string     `gorm:"column:registration_order_id;type:varchar(64);not null;uniqueIndex" json:"registration_order_id"`
	RegistrationSnapToken *string    `gorm:"column:registration_snap_token;type:text" json:"registration_snap_token,omitempty"`
	RegistrationProofURL  *string    `gorm:"column:registration_proof_url;type:text" json:"registration_proof_url,omitempty"`
	RegistrationStatus    string     `gorm:"column:registration_status;type:varchar(20);not null;default:'pending'" json:"registration_status"`
	RegistrationNotes     *string    `gorm:"column:registration_notes;type:text" json:"registration_notes,omitempty"`
	RegistrationApprover  *uuid.UUID `gorm:"column:registration_approver;type:uuid" json:"registration_approver,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (RegistrationModel) TableName() string {
	return "registrations"
}
