package models

// Status of an application.
type Status string

const (
	StatusApproved Status = "Approved"
	StatusPending  Status = "Pending"
	StatusRejected Status = "Rejected"
)

// Application is a citizen's request to join a scheme. Applications are
// not yet served by the backend; the table shows built-in sample data.
type Application struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Scheme      string `json:"scheme"`
	DateApplied string `json:"date_applied"`
	Status      Status `json:"status"`
}

// Row adds the display date.
type Row struct {
	Application
	Date string `json:"date"`
}
