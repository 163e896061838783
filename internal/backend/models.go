package backend

import (
	"payzee/pkg/domain"
)

// Wire types of the Payzee REST API. Field names follow the API's snake_case JSON.

// EligibilityCriteria restricts who may enrol in a scheme. Nil means "no restriction".
type EligibilityCriteria struct {
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

type Scheme struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Description         string              `json:"description"`
	GovtID              string              `json:"govt_id"`
	Amount              float64             `json:"amount"`
	Status              string              `json:"status"`
	EligibilityCriteria EligibilityCriteria `json:"eligibility_criteria"`
	Tags                []string            `json:"tags"`
	Beneficiaries       []string            `json:"beneficiaries"`
	CreatedAt           domain.Timestamp    `json:"created_at"`
	UpdatedAt           domain.Timestamp    `json:"updated_at"`
}

// SchemePayload is the body of scheme create and update calls.
type SchemePayload struct {
	Name                string              `json:"name"`
	Description         string              `json:"description"`
	Amount              float64             `json:"amount"`
	Status              string              `json:"status"`
	EligibilityCriteria EligibilityCriteria `json:"eligibility_criteria"`
	Tags                []string            `json:"tags"`
}

// SchemeResponse answers scheme create, update and delete.
type SchemeResponse struct {
	Message  string `json:"message"`
	SchemeID string `json:"scheme_id"`
}

type AccountInfo struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	ImageURL     string           `json:"image_url"`
	UserType     string           `json:"user_type"`
	Gender       string           `json:"gender,omitempty"`
	Jurisdiction string           `json:"jurisdiction,omitempty"`
	GovtID       string           `json:"govt_id,omitempty"`
	CreatedAt    domain.Timestamp `json:"created_at"`
	UpdatedAt    domain.Timestamp `json:"updated_at"`
}

type PersonalInfo struct {
	Phone        string  `json:"phone"`
	IDType       string  `json:"id_type"`
	IDNumber     string  `json:"id_number"`
	Address      string  `json:"address"`
	DOB          string  `json:"dob"`
	Gender       string  `json:"gender"`
	Occupation   string  `json:"occupation"`
	Caste        string  `json:"caste"`
	AnnualIncome float64 `json:"annual_income"`
}

type Wallet struct {
	Balance      float64  `json:"balance"`
	Transactions []string `json:"transactions"`
}

type CitizenWallets struct {
	GovtWallet     Wallet `json:"govt_wallet"`
	PersonalWallet Wallet `json:"personal_wallet"`
}

type Citizen struct {
	AccountInfo  AccountInfo    `json:"account_info"`
	PersonalInfo PersonalInfo   `json:"personal_info"`
	WalletInfo   CitizenWallets `json:"wallet_info"`
	SchemeInfo   []string       `json:"scheme_info"`
}

// IsBeneficiary reports whether the citizen is enrolled in at least one scheme.
func (c Citizen) IsBeneficiary() bool {
	return len(c.SchemeInfo) > 0
}

type BusinessInfo struct {
	BusinessName string `json:"business_name"`
	BusinessID   string `json:"business_id"`
	LicenseType  string `json:"license_type"`
	Occupation   string `json:"occupation"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

type Vendor struct {
	AccountInfo  AccountInfo  `json:"account_info"`
	BusinessInfo BusinessInfo `json:"business_info"`
	WalletInfo   Wallet       `json:"wallet_info"`
}

// Transaction types and statuses the API emits.
const (
	TxCitizenToVendor     = "citizen-to-vendor"
	TxGovernmentToCitizen = "government-to-citizen"

	TxStatusCompleted = "completed"
	TxStatusPending   = "pending"
	TxStatusFailed    = "failed"
)

type Transaction struct {
	ID          string           `json:"id"`
	FromID      string           `json:"from_id"`
	ToID        string           `json:"to_id"`
	Amount      float64          `json:"amount"`
	TxType      string           `json:"tx_type"`
	SchemeID    *string          `json:"scheme_id"`
	Description string           `json:"description"`
	Timestamp   domain.Timestamp `json:"timestamp"`
	Status      string           `json:"status"`
}

type GovernmentWallet struct {
	Balance      float64  `json:"balance"`
	Schemes      []string `json:"schemes"`
	Transactions []string `json:"transactions"`
}

type Government struct {
	AccountInfo AccountInfo      `json:"account_info"`
	WalletInfo  GovernmentWallet `json:"wallet_info"`
}

type LoginRequest struct {
	IDNumber string `json:"id_number"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message       string `json:"message"`
	UserID        string `json:"user_id"`
	UserType      string `json:"user_type"`
	TransactionID string `json:"transaction_id,omitempty"`
	SchemeID      string `json:"scheme_id,omitempty"`
}

type GovernmentSignupRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Department   string `json:"department"`
	Jurisdiction string `json:"jurisdiction"`
	GovtID       string `json:"govt_id"`
}

type SignupResponse struct {
	Message  string `json:"message"`
	UserID   string `json:"user_id,omitempty"`
	UserType string `json:"user_type,omitempty"`
}
