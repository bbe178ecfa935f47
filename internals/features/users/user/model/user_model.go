package model

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserName string    `gorm:"column:user_name;type:varchar(50);not null" json:"user_name" validate:"required,min=3,max=50"`
	FullName string    `gorm:"column:full_name;type:varchar(100);not null" json:"full_name" validate:"required,min=3,max=100"`
	Email    string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email,max=255"`
	Password string    `gorm:"column:password;type:varchar(255)" json:"password,omitempty" validate:"omitempty,min=8"`
	GoogleID *string   `gorm:"column:google_id;type:varchar(255)" json:"google_id,omitempty"`
	Role     string    `gorm:"column:role;type:varchar(20);not null;default:'student'" json:"role" validate:"omitempty,oneof=student supervisor admin"`
	IsActive bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

var validate = validator.New()

func (u *UserModel) Validate() error {
	return validate.Struct(u)
}
