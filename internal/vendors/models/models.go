package models

// Row is one line of the vendors table.
type Row struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ImageURL     string `json:"image_url"`
	BusinessName string `json:"business_name"`
	BusinessID   string `json:"business_id"`
	LicenseType  string `json:"license_type"`
	Occupation   string `json:"occupation"`
	Phone        string `json:"phone"`
	Balance      string `json:"balance"`
	JoinedOn     string `json:"joined_on"`
}

// Detail is the vendor profile page.
type Detail struct {
	Row
	Gender       string  `json:"gender"`
	Address      string  `json:"address"`
	BalanceValue float64 `json:"balance_value"`
	Transactions int     `json:"transactions"`
}
