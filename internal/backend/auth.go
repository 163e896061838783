package backend

import (
	"context"
	"net/http"
)

// Login exchanges an id number and password for the backend user identity.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, call{
		method:   http.MethodPost,
		resource: "auth",
		path:     "/auth/login",
		body:     req,
		out:      &resp,
		public:   true,
	}); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignupGovernment registers a government account.
func (c *Client) SignupGovernment(ctx context.Context, req GovernmentSignupRequest) (*SignupResponse, error) {
	var resp SignupResponse
	if err := c.do(ctx, call{
		method:   http.MethodPost,
		resource: "auth",
		path:     "/auth/signup/government",
		body:     req,
		out:      &resp,
		public:   true,
	}); err != nil {
		return nil, err
	}
	return &resp, nil
}
