package models

import "payzee/pkg/requestcontext"

// Redirect targets after sign-in, by account kind.
const (
	GovernmentHome = "/dashboard"
	CitizenHome    = "/citizen/dashboard"
	VendorHome     = "/vendor/dashboard"
)

// HomeFor returns where a freshly signed-in user is sent.
func HomeFor(userType requestcontext.UserType) string {
	switch userType {
	case requestcontext.UserTypeCitizen:
		return CitizenHome
	case requestcontext.UserTypeVendor:
		return VendorHome
	default:
		return GovernmentHome
	}
}

// Result is a successful login or signup: the identity to store in the
// session and the message the backend sent.
type Result struct {
	Identity requestcontext.Identity
	Message  string
	Redirect string
}
