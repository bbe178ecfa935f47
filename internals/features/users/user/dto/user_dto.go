package dto

import (
	"strings"

	uModel "magangku_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest — untuk create by admin (supervisor/mahasiswa manual)
type CreateUserRequest struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=50"`
	FullName string  `json:"full_name" validate:"required,min=3,max=100"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8"`
	GoogleID *string `json:"google_id,omitempty"`
	Role     string  `json:"role" validate:"omitempty,oneof=student supervisor admin"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.TrimSpace(r.Role)
}

// ToModel — konversi ke model (hash password di controller!)
func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	m := &uModel.UserModel{
		UserName: r.UserName,
		FullName: r.FullName,
		Email:    r.Email,
		Password: r.Password, // hash di controller
		GoogleID: r.GoogleID,
		Role:     r.Role,
		IsActive: true,
	}
	if r.Role == "" {
		m.Role = "student"
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

// UpdateUserRequest — partial update (pointer agar bisa bedakan omit vs null)
type UpdateUserRequest struct {
	UserName *string `json:"user_name,omitempty" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=student supervisor admin"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Role != nil {
		v := strings.TrimSpace(*r.Role)
		r.Role = &v
	}
}

// ApplyToModel — patch field yang dikirim saja
func (r *UpdateUserRequest) ApplyToModel(m *uModel.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserLite struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func ToUserLite(m *uModel.UserModel) UserLite {
	return UserLite{
		ID:       m.ID.String(),
		UserName: m.UserName,
		FullName: m.FullName,
		Email:    m.Email,
		Role:     m.Role,
	}
}
