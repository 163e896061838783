package models

// Profile is the settings page view of the signed-in government.
type Profile struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Jurisdiction     string  `json:"jurisdiction"`
	GovtID           string  `json:"govt_id"`
	ImageURL         string  `json:"image_url"`
	UserType         string  `json:"user_type"`
	Balance          float64 `json:"balance"`
	BalanceLabel     string  `json:"balance_label"`
	SchemeCount      int     `json:"scheme_count"`
	TransactionCount int     `json:"transaction_count"`
	MemberSince      string  `json:"member_since"`
	LastUpdated      string  `json:"last_updated"`
}
