package models

import (
	"strings"

	"payzee/pkg/validation"
)

// LoginRequest is the login form.
type LoginRequest struct {
	IDNumber string `json:"id_number" validate:"required,notblank,max=100"`
	Password string `json:"password" validate:"required,max=128"`
}

func (r *LoginRequest) Normalize() {
	if r == nil {
		return
	}
	r.IDNumber = strings.TrimSpace(r.IDNumber)
}

func (r *LoginRequest) Validate() error {
	return validation.Validate(r)
}

// RegisterRequest is the government signup form.
type RegisterRequest struct {
	Name         string `json:"name" validate:"required,notblank,max=200"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=8,max=128"`
	Department   string `json:"department" validate:"required,notblank,max=200"`
	Jurisdiction string `json:"jurisdiction" validate:"required,notblank,max=200"`
	GovtID       string `json:"govt_id" validate:"required,notblank,max=100"`
}

func (r *RegisterRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Department = strings.TrimSpace(r.Department)
	r.Jurisdiction = strings.TrimSpace(r.Jurisdiction)
	r.GovtID = strings.TrimSpace(r.GovtID)
}

func (r *RegisterRequest) Validate() error {
	return validation.Validate(r)
}
