package backend

import (
	"context"
	"net/http"

	id "payzee/pkg/domain"
)

func (c *Client) ListSchemes(ctx context.Context, govtID id.GovernmentID) ([]Scheme, error) {
	var out []Scheme
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		resource: "schemes",
		path:     governmentPath(govtID, "schemes"),
		out:      &out,
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetScheme(ctx context.Context, govtID id.GovernmentID, schemeID id.SchemeID) (*Scheme, error) {
	var out Scheme
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		resource: "schemes",
		path:     governmentPath(govtID, "schemes", schemeID.String()),
		out:      &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateScheme(ctx context.Context, govtID id.GovernmentID, payload SchemePayload) (*SchemeResponse, error) {
	var out SchemeResponse
	if err := c.do(ctx, call{
		method:   http.MethodPost,
		resource: "schemes",
		path:     governmentPath(govtID, "schemes"),
		body:     payload,
		out:      &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateScheme(ctx context.Context, govtID id.GovernmentID, schemeID id.SchemeID, payload SchemePayload) (*SchemeResponse, error) {
	var out SchemeResponse
	if err := c.do(ctx, call{
		method:   http.MethodPut,
		resource: "schemes",
		path:     governmentPath(govtID, "schemes", schemeID.String()),
		body:     payload,
		out:      &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteScheme soft-deletes: the API marks the scheme inactive and keeps the record.
func (c *Client) DeleteScheme(ctx context.Context, govtID id.GovernmentID, schemeID id.SchemeID) (*SchemeResponse, error) {
	var out SchemeResponse
	if err := c.do(ctx, call{
		method:   http.MethodDelete,
		resource: "schemes",
		path:     governmentPath(govtID, "schemes", schemeID.String()),
		out:      &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}
