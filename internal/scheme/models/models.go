package models

import (
	"slices"
	"strings"
	"time"
)

// Status of a scheme. Deleting a scheme sets it to StatusInactive.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// ParseStatus accepts a status in any letter case.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

// allowedTags is the fixed tag vocabulary, in display order.
var allowedTags = []string{
	"food", "essentials", "subsidy", "poverty",
	"agriculture", "rural",
	"employment", "youth", "skills", "training",
	"digital", "literacy", "technology",
	"startups", "business", "entrepreneurs",
	"health", "insurance", "medical",
	"education",
	"women", "children",
}

// AllowedTags returns a copy of the tag allow-list.
func AllowedTags() []string {
	return slices.Clone(allowedTags)
}

func IsAllowedTag(tag string) bool {
	return slices.Contains(allowedTags, tag)
}

// Eligibility restricts who may enrol. Nil fields place no restriction.
type Eligibility struct {
	Occupation   *string  `json:"occupation"`
	MinAge       *int     `json:"min_age"`
	MaxAge       *int     `json:"max_age"`
	Gender       *string  `json:"gender"`
	State        *string  `json:"state"`
	District     *string  `json:"district"`
	City         *string  `json:"city"`
	Caste        *string  `json:"caste"`
	AnnualIncome *float64 `json:"annual_income"`
}

// Scheme is a welfare scheme as the dashboard shows it.
type Scheme struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	GovtID        string      `json:"govt_id"`
	Amount        float64     `json:"amount"`
	Status        Status      `json:"status"`
	Eligibility   Eligibility `json:"eligibility_criteria"`
	Tags          []string    `json:"tags"`
	Beneficiaries []string    `json:"beneficiaries"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// TargetGroup is the tags joined for display, or "All" when untagged.
func (s Scheme) TargetGroup() string {
	if len(s.Tags) == 0 {
		return "All"
	}
	return strings.Join(s.Tags, ", ")
}

// Row is one line of the schemes table.
type Row struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	LaunchDate    string    `json:"launch_date"`
	TargetGroup   string    `json:"target_group"`
	FundAllocated string    `json:"fund_allocated"`
	Status        Status    `json:"status"`
	Tags          []string  `json:"tags"`
	Beneficiaries int       `json:"beneficiaries"`
	CreatedAt     time.Time `json:"created_at"`
}

// Detail is a scheme with its editable form.
type Detail struct {
	Scheme Scheme `json:"scheme"`
	Form   Form   `json:"form"`
}
