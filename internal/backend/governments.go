package backend

import (
	"context"
	"net/http"
	"net/url"

	id "payzee/pkg/domain"
)

func governmentPath(govtID id.GovernmentID, parts ...string) string {
	p := "/governments/" + url.PathEscape(govtID.String())
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

func (c *Client) GetGovernment(ctx context.Context, govtID id.GovernmentID) (*Government, error) {
	var out Government
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		resource: "governments",
		path:     governmentPath(govtID),
		out:      &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCitizens(ctx context.Context, govtID id.GovernmentID) ([]Citizen, error) {
	var out []Citizen
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		resource: "citizens",
		path:     governmentPath(govtID, "citizens"),
		out:      &out,
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCitizen(ctx context.Context, govtID id.GovernmentID, citizenID id.CitizenID) (*Citizen, error) {
	var out Citizen
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		resource: "citizens",
		path:     governmentPath(govtID, "citizens", citizenID.String()),
		out:      &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListVendors(ctx context.Context, govtID id.GovernmentID) ([]Vendor, error) {
	var out []Vendor
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		resource: "vendors",
		path:     governmentPath(govtID, "vendors"),
		out:      &out,
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetVendor(ctx context.Context, govtID id.GovernmentID, vendorID id.VendorID) (*Vendor, error) {
	var out Vendor
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		resource: "vendors",
		path:     governmentPath(govtID, "vendors", vendorID.String()),
		out:      &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTransactions(ctx context.Context, govtID id.GovernmentID) ([]Transaction, error) {
	var out []Transaction
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		resource: "transactions",
		path:     governmentPath(govtID, "transactions"),
		out:      &out,
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTransaction(ctx context.Context, govtID id.GovernmentID, txID id.TransactionID) (*Transaction, error) {
	var out Transaction
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		resource: "transactions",
		path:     governmentPath(govtID, "transactions", txID.String()),
		out:      &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}
