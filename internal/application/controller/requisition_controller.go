package controller

import (
	"net/http"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/model"
	"bdmep-api/internal/domain/usecase/requisition"

	"github.com/labstack/echo/v4"
)

type RequisitionController struct {
	api     *echo.Group
	useCase requisition.UseCase
}

func NewRequisitionController(api *echo.Group, useCase requisition.UseCase) *RequisitionController {
	return &RequisitionController{api: api, useCase: useCase}
}

// InitRequisitionRoutes initializes requisition routes
func (controller *RequisitionController) InitRequisitionRoutes() {
	controller.api.POST("/requisitions/payload", controller.BuildPayload)
	controller.api.POST("/requisitions", controller.Submit)
	controller.api.POST("/requisitions/async", controller.Enqueue)
}

// BuildPayload godoc
// @Summary Build a requisition payload
// @Description Resolve the selectors and return the payload without sending it
// @Tags requisitions
// @Accept json
// @Produce json
// @Param request body model.RequisitionRequest true "Requisition"
// @Success 200 {object} model.Payload
// @Failure 400 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /requisitions/payload [post]
func (controller *RequisitionController) BuildPayload(c echo.Context) error {
	req, err := controller.bindRequest(c)
	if err != nil {
		return errorResponse(c, err)
	}

	payload, err := controller.useCase.Build(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, payload)
}

// Submit godoc
// @Summary Submit a requisition
// @Description Build the payload and post it to BDMEP, which mails the data to the given address
// @Tags requisitions
// @Accept json
// @Produce json
// @Param request body model.RequisitionRequest true "Requisition"
// @Success 200 {object} model.SubmissionResult
// @Failure 400 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /requisitions [post]
func (controller *RequisitionController) Submit(c echo.Context) error {
	req, err := controller.bindRequest(c)
	if err != nil {
		return errorResponse(c, err)
	}

	result, err := controller.useCase.Submit(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Enqueue godoc
// @Summary Enqueue a requisition
// @Description Build the payload and queue it for asynchronous submission
// @Tags requisitions
// @Accept json
// @Produce json
// @Param request body model.RequisitionRequest true "Requisition"
// @Success 202 {object} model.EnqueueResult
// @Failure 400 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /requisitions/async [post]
func (controller *RequisitionController) Enqueue(c echo.Context) error {
	req, err := controller.bindRequest(c)
	if err != nil {
		return errorResponse(c, err)
	}

	result, err := controller.useCase.Enqueue(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusAccepted, result)
}

// bindRequest parses the body; enum and date checks are left to the use case
func (controller *RequisitionController) bindRequest(c echo.Context) (requisition.PayloadRequest, error) {
	var body model.RequisitionRequest
	if err := bindBody(c, &body); err != nil {
		return requisition.PayloadRequest{}, err
	}

	attributes, err := toSelector("attributes", body.Attributes)
	if err != nil {
		return requisition.PayloadRequest{}, err
	}
	stations, err := toSelector("stations", body.Stations)
	if err != nil {
		return requisition.PayloadRequest{}, err
	}

	return requisition.PayloadRequest{
		Email:       body.Email,
		Frequency:   entity.Frequency(body.Frequency),
		StationType: entity.StationType(body.StationType),
		Region:      entity.Region(body.Region),
		Attributes:  attributes,
		Stations:    stations,
		StartDate:   entity.DateFromString(body.StartDate),
		EndDate:     entity.DateFromString(body.EndDate),
		Decimal:     body.Decimal,
	}, nil
}
