// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "payzee/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing SchemeID where GovernmentID is expected.
type (
	GovernmentID  uuid.UUID
	SchemeID      uuid.UUID
	CitizenID     uuid.UUID
	VendorID      uuid.UUID
	TransactionID uuid.UUID
)

// Parse functions - use at trust boundaries (handlers, cookies, backend payloads).

func ParseGovernmentID(s string) (GovernmentID, error) {
	id, err := parseUUID(s, "government ID")
	return GovernmentID(id), err
}

func ParseSchemeID(s string) (SchemeID, error) {
	id, err := parseUUID(s, "scheme ID")
	return SchemeID(id), err
}

func ParseCitizenID(s string) (CitizenID, error) {
	id, err := parseUUID(s, "citizen ID")
	return CitizenID(id), err
}

func ParseVendorID(s string) (VendorID, error) {
	id, err := parseUUID(s, "vendor ID")
	return VendorID(id), err
}

func ParseTransactionID(s string) (TransactionID, error) {
	id, err := parseUUID(s, "transaction ID")
	return TransactionID(id), err
}

func (id GovernmentID) String() string  { return uuid.UUID(id).String() }
func (id SchemeID) String() string      { return uuid.UUID(id).String() }
func (id CitizenID) String() string     { return uuid.UUID(id).String() }
func (id VendorID) String() string      { return uuid.UUID(id).String() }
func (id TransactionID) String() string { return uuid.UUID(id).String() }

func (id GovernmentID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id SchemeID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id CitizenID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id VendorID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id TransactionID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// parseUUID is the shared validation logic. The nil UUID is rejected: the
// backend never issues it and a path segment of all zeroes is a client bug.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	if id == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be nil")
	}
	return id, nil
}
