// Package models holds the beneficiary views: citizens enrolled in at least
// one scheme of the signed-in government.
package models

// Row is one line of the beneficiaries table.
type Row struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	ImageURL     string  `json:"image_url"`
	Phone        string  `json:"phone"`
	IDType       string  `json:"id_type"`
	IDNumber     string  `json:"id_number"`
	Gender       string  `json:"gender"`
	Occupation   string  `json:"occupation"`
	Caste        string  `json:"caste"`
	AnnualIncome float64 `json:"annual_income"`
	SchemeCount  int     `json:"scheme_count"`
	GovtBalance  string  `json:"govt_balance"`
	JoinedOn     string  `json:"joined_on"`
}

// EnrolledScheme is a scheme the beneficiary is enrolled in.
type EnrolledScheme struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount"`
	AmountLabel string  `json:"amount_label"`
}

type Wallet struct {
	Balance      float64 `json:"balance"`
	BalanceLabel string  `json:"balance_label"`
	Transactions int     `json:"transactions"`
}

// Detail is the beneficiary profile page.
type Detail struct {
	Row
	Address        string           `json:"address"`
	DOB            string           `json:"dob"`
	Age            *int             `json:"age"`
	GovtWallet     Wallet           `json:"govt_wallet"`
	PersonalWallet Wallet           `json:"personal_wallet"`
	Schemes        []EnrolledScheme `json:"schemes"`
	// UnresolvedSchemeIDs are enrolments whose scheme the government no
	// longer lists.
	UnresolvedSchemeIDs []string `json:"unresolved_scheme_ids"`
}
