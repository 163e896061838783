package models

import "payzee/pkg/requestcontext"

type LoginResponse struct {
	Message  string `json:"message"`
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
	Redirect string `json:"redirect"`
}

type LogoutResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

// MeResponse describes the current session.
type MeResponse struct {
	UserID        string `json:"user_id"`
	UserType      string `json:"user_type"`
	TransactionID string `json:"transaction_id,omitempty"`
	SchemeID      string `json:"scheme_id,omitempty"`
	Device        string `json:"device,omitempty"`
}

func NewLoginResponse(res *Result) *LoginResponse {
	return &LoginResponse{
		Message:  res.Message,
		UserID:   res.Identity.GovernmentID.String(),
		UserType: string(res.Identity.UserType),
		Redirect: res.Redirect,
	}
}

func NewMeResponse(identity requestcontext.Identity) *MeResponse {
	return &MeResponse{
		UserID:        identity.GovernmentID.String(),
		UserType:      string(identity.UserType),
		TransactionID: identity.TransactionID,
		SchemeID:      identity.SchemeID,
		Device:        identity.Device,
	}
}
