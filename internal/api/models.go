package api

import (
	"github.com/phrazzld/armoury-api/internal/service"
	"github.com/phrazzld/armoury-api/internal/store"
)

// Common request/response structures

// StartDeckRequest defines the payload for opening a deck.
type StartDeckRequest struct {
	Division string `json:"division" validate:"required"`
}

// AddPackRequest defines the payload for buying a pack into a deck.
type AddPackRequest struct {
	PackDescriptor string `json:"pack_descriptor" validate:"required"`

	// Veterancy is required; a pointer distinguishes 0 from absent.
	Veterancy *int `json:"veterancy" validate:"required,gte=0"`

	// TransportDescriptor optionally picks one of the pack's available transports.
	TransportDescriptor string `json:"transport_descriptor,omitempty"`
}

// toServiceRequest converts the payload after validation.
func (r AddPackRequest) toServiceRequest() service.AddPackRequest {
	return service.AddPackRequest{
		PackDescriptor:      r.PackDescriptor,
		Veterancy:           *r.Veterancy,
		TransportDescriptor: r.TransportDescriptor,
	}
}

// DivisionListResponse is the response of GET /api/divisions.
type DivisionListResponse struct {
	Divisions []store.DivisionSummary `json:"divisions"`
}
