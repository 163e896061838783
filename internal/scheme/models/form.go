package models

import (
	"fmt"
	"slices"
	"strings"

	dErrors "payzee/pkg/domain-errors"
	strutil "payzee/pkg/platform/strings"
	"payzee/pkg/validation"
)

// FormEligibility is the eligibility block of the scheme form. Unlike the
// API shape it carries the tags, which are edited alongside the criteria.
type FormEligibility struct {
	Eligibility
	Tags []string `json:"tags"`
}

// Form mirrors an editable scheme.
type Form struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Status      Status          `json:"status"`
	Eligibility FormEligibility `json:"eligibility"`
}

// NewForm is the blank create form.
func NewForm() Form {
	return Form{
		Status:      StatusActive,
		Eligibility: FormEligibility{Tags: []string{}},
	}
}

// FormFromScheme fills the form with the scheme's current values.
func FormFromScheme(s Scheme) Form {
	tags := slices.Clone(s.Tags)
	if tags == nil {
		tags = []string{}
	}
	return Form{
		Name:        s.Name,
		Description: s.Description,
		Amount:      s.Amount,
		Status:      s.Status,
		Eligibility: FormEligibility{Eligibility: s.Eligibility, Tags: tags},
	}
}

// ToggleTag adds tag if absent and removes it if present.
func (f *Form) ToggleTag(tag string) error {
	tags, err := ToggleTag(f.Eligibility.Tags, tag)
	if err != nil {
		return err
	}
	f.Eligibility.Tags = tags
	return nil
}

// ToggleTag returns tags with tag added if absent or removed if present.
// Tags outside the allow-list are rejected.
func ToggleTag(tags []string, tag string) ([]string, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if !IsAllowedTag(tag) {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown tag %q", tag))
	}
	if i := slices.Index(tags, tag); i >= 0 {
		return slices.Delete(slices.Clone(tags), i, i+1), nil
	}
	return append(slices.Clone(tags), tag), nil
}

// Normalize trims text, lowercases tags and turns blank criteria into nil.
func (f *Form) Normalize() {
	if f == nil {
		return
	}
	strutil.TrimAll(&f.Name, &f.Description)
	if s, ok := ParseStatus(string(f.Status)); ok {
		f.Status = s
	} else if strings.TrimSpace(string(f.Status)) == "" {
		f.Status = StatusActive
	}
	e := &f.Eligibility
	e.Occupation = strutil.BlankToNil(e.Occupation)
	e.Gender = strutil.BlankToNil(e.Gender)
	e.State = strutil.BlankToNil(e.State)
	e.District = strutil.BlankToNil(e.District)
	e.City = strutil.BlankToNil(e.City)
	e.Caste = strutil.BlankToNil(e.Caste)
	e.Tags = strutil.DedupeAndTrimLower(e.Tags)
}

// Validate enforces the rules a scheme must satisfy before it is submitted.
func (f *Form) Validate() error {
	if f == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if f.Name == "" || f.Description == "" {
		return dErrors.New(dErrors.CodeValidation, "Scheme name and description are required")
	}
	if err := validation.CheckStringLength("name", f.Name, validation.MaxNameLength); err != nil {
		return err
	}
	if err := validation.CheckStringLength("description", f.Description, validation.MaxDescriptionLength); err != nil {
		return err
	}
	if f.Amount < 0 {
		return dErrors.New(dErrors.CodeValidation, "amount must not be negative")
	}
	if !f.Status.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "status must be one of [active inactive pending]")
	}

	e := f.Eligibility
	if e.MinAge != nil && *e.MinAge < 0 {
		return dErrors.New(dErrors.CodeValidation, "min_age must not be negative")
	}
	if e.MaxAge != nil && *e.MaxAge < 0 {
		return dErrors.New(dErrors.CodeValidation, "max_age must not be negative")
	}
	if e.MinAge != nil && e.MaxAge != nil && *e.MinAge > *e.MaxAge {
		return dErrors.New(dErrors.CodeValidation, "min_age must not exceed max_age")
	}
	if e.AnnualIncome != nil && *e.AnnualIncome < 0 {
		return dErrors.New(dErrors.CodeValidation, "annual_income must not be negative")
	}
	for _, field := range []*string{e.Occupation, e.Gender, e.State, e.District, e.City, e.Caste} {
		if field != nil {
			if err := validation.CheckStringLength("eligibility criterion", *field, validation.MaxTextFieldLength); err != nil {
				return err
			}
		}
	}
	if err := validation.CheckSliceCount("tags", len(e.Tags), validation.MaxTags); err != nil {
		return err
	}
	for _, tag := range e.Tags {
		if !IsAllowedTag(tag) {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown tag %q", tag))
		}
	}
	return nil
}

// Payload is the submit shape: tags lifted to the top level and the
// criteria sent without them.
type Payload struct {
	Name        string
	Description string
	Amount      float64
	Status      Status
	Eligibility Eligibility
	Tags        []string
}

func (f Form) ToPayload() Payload {
	tags := slices.Clone(f.Eligibility.Tags)
	if tags == nil {
		tags = []string{}
	}
	return Payload{
		Name:        f.Name,
		Description: f.Description,
		Amount:      f.Amount,
		Status:      f.Status,
		Eligibility: f.Eligibility.Eligibility,
		Tags:        tags,
	}
}

// Apply reconciles s with the values that were just submitted successfully.
func (p Payload) Apply(s Scheme) Scheme {
	s.Name = p.Name
	s.Description = p.Description
	s.Amount = p.Amount
	s.Status = p.Status
	s.Eligibility = p.Eligibility
	s.Tags = slices.Clone(p.Tags)
	return s
}

// PayloadFromScheme rebuilds a full payload from a scheme, used when only
// one field changes (the status selector).
func PayloadFromScheme(s Scheme) Payload {
	return FormFromScheme(s).ToPayload()
}
