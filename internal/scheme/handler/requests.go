package handler

import (
	"strings"

	"payzee/internal/scheme/models"
	dErrors "payzee/pkg/domain-errors"
)

// SchemeRequest is the scheme form as the browser submits it.
type SchemeRequest struct {
	models.Form
}

// ToggleTagRequest carries the current form tags and the tag clicked.
type ToggleTagRequest struct {
	Tags []string `json:"tags"`
	Tag  string   `json:"tag"`
}

func (r *ToggleTagRequest) Normalize() {
	if r == nil {
		return
	}
	r.Tag = strings.ToLower(strings.TrimSpace(r.Tag))
	if r.Tags == nil {
		r.Tags = []string{}
	}
}

func (r *ToggleTagRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Tag == "" {
		return dErrors.New(dErrors.CodeValidation, "tag is required")
	}
	return nil
}

type StatusRequest struct {
	Status string `json:"status"`
}

func (r *StatusRequest) Normalize() {
	if r == nil {
		return
	}
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

func (r *StatusRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if !models.Status(r.Status).IsValid() {
		return dErrors.New(dErrors.CodeValidation, "status must be one of [active inactive pending]")
	}
	return nil
}
