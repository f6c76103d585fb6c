package requisition

import (
	"context"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/model"
)

type UseCase interface {
	// Build validates the request, resolves its selectors and assembles the payload
	Build(ctx context.Context, req PayloadRequest) (*model.Payload, error)

	// Submit builds the payload and posts it to BDMEP
	Submit(ctx context.Context, req PayloadRequest) (*model.SubmissionResult, error)

	// Enqueue builds the payload and publishes it for asynchronous submission
	Enqueue(ctx context.Context, req PayloadRequest) (*model.EnqueueResult, error)

	// Process posts a payload received from the queue
	Process(ctx context.Context, message model.RequisitionMessage) error
}

// PayloadRequest is the user input of a data request
type PayloadRequest struct {
	Email       string
	Frequency   entity.Frequency
	StationType entity.StationType
	// Region narrows the station catalog used to resolve station selectors
	Region entity.Region
	// Attributes and Stations must be AllSelectors or a non-empty explicit list
	Attributes entity.Selector
	Stations   entity.Selector
	StartDate  entity.DateInput
	EndDate    entity.DateInput
	// Decimal is "." or ",". Empty stands in for the "." default of the BDMEP form
	// and is the only value outside those two that is accepted.
	Decimal string
}

var decimalMarkers = map[string]string{
	".": "P",
	",": "V",
}
