package api

import "github.com/povarna/dlist/internal/models"

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type ListsResponse struct {
	Names []string `json:"names"`
}

// CommandRequest is a command whose list comes from the URL path.
type CommandRequest struct {
	ID     string           `json:"id,omitempty"`
	Op     models.Operation `json:"op"`
	Value  *int             `json:"value,omitempty"`
	Index  *int             `json:"index,omitempty"`
	Target string           `json:"target,omitempty"`
}
