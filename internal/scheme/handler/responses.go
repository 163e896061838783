package handler

import (
	"payzee/internal/listing"
	"payzee/internal/scheme/models"
)

// ListResponse is the schemes table plus the query it was derived from,
// so the browser can redraw the filter controls.
type ListResponse struct {
	listing.Result[models.Row]
	Filter string `json:"filter"`
	Search string `json:"search"`
}

type TagsResponse struct {
	Tags []string `json:"tags"`
}

type WriteResponse struct {
	Message string         `json:"message"`
	Scheme  *models.Scheme `json:"scheme"`
}
