package models

import (
	"payzee/internal/chart"
	schemeModels "payzee/internal/scheme/models"
	txModels "payzee/internal/transaction/models"
)

// TagCount is how many schemes carry a tag.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// MonthlyAmount is the money disbursed to citizens in one calendar month.
type MonthlyAmount struct {
	Month  string  `json:"month"`
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
}

type Stats struct {
	TotalSchemes       int             `json:"total_schemes"`
	TotalBeneficiaries int             `json:"total_beneficiaries"`
	TotalFundAllocated float64         `json:"total_fund_allocated"`
	TotalFundLabel     string          `json:"total_fund_label"`
	PendingApprovals   int             `json:"pending_approvals"`
	SchemesByTag       []TagCount      `json:"schemes_by_tag"`
	Monthly            []MonthlyAmount `json:"monthly"`
}

type Charts struct {
	MonthlyFunds    chart.Dataset `json:"monthly_funds"`
	SchemesByTag    chart.Dataset `json:"schemes_by_tag"`
	SchemesByStatus chart.Dataset `json:"schemes_by_status"`
}

// Dashboard is the landing page of a government account.
type Dashboard struct {
	Stats              Stats              `json:"stats"`
	Charts             Charts             `json:"charts"`
	RecentTransactions []txModels.Row     `json:"recent_transactions"`
	RecentSchemes      []schemeModels.Row `json:"recent_schemes"`
}
