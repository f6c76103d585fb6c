package api

import (
	"context"

	"bdmep-api/internal/domain/model"
)

// RequisitionGateway submits data requests to BDMEP
type RequisitionGateway interface {
	// Submit posts the payload form-encoded and returns the raw response text
	Submit(ctx context.Context, payload model.Payload) (string, error)
}
