package controller

import (
	"fmt"
	"net/http"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/model"
	"bdmep-api/internal/domain/usecase/selector"

	"github.com/labstack/echo/v4"
)

type SelectorController struct {
	api     *echo.Group
	useCase selector.UseCase
}

func NewSelectorController(api *echo.Group, useCase selector.UseCase) *SelectorController {
	return &SelectorController{api: api, useCase: useCase}
}

// InitSelectorRoutes initializes selector routes
func (controller *SelectorController) InitSelectorRoutes() {
	controller.api.POST("/selectors/attributes", controller.ResolveAttributes)
	controller.api.POST("/selectors/stations", controller.ResolveStations)
}

// ResolveAttributes godoc
// @Summary Resolve attribute selectors
// @Description Resolve codes, aliases or exact descriptions into attribute codes
// @Tags selectors
// @Accept json
// @Produce json
// @Param request body model.AttributeSelectorRequest true "Selectors"
// @Success 200 {object} model.ResolvedCodesResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /selectors/attributes [post]
func (controller *SelectorController) ResolveAttributes(c echo.Context) error {
	var req model.AttributeSelectorRequest
	if err := bindBody(c, &req); err != nil {
		return errorResponse(c, err)
	}

	frequency, err := entity.ParseFrequency(req.Frequency)
	if err != nil {
		return errorResponse(c, err)
	}
	stationType, err := entity.ParseStationType(req.StationType)
	if err != nil {
		return errorResponse(c, err)
	}
	sel, err := toSelector("selectors", req.Selectors)
	if err != nil {
		return errorResponse(c, err)
	}

	codes, err := controller.useCase.ResolveAttributes(c.Request().Context(), frequency, stationType, sel)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.ResolvedCodesResponse{Codes: codes})
}

// ResolveStations godoc
// @Summary Resolve station selectors
// @Description Resolve station codes or "City ST" names into station codes
// @Tags selectors
// @Accept json
// @Produce json
// @Param request body model.StationSelectorRequest true "Selectors"
// @Success 200 {object} model.ResolvedCodesResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /selectors/stations [post]
func (controller *SelectorController) ResolveStations(c echo.Context) error {
	var req model.StationSelectorRequest
	if err := bindBody(c, &req); err != nil {
		return errorResponse(c, err)
	}

	stationType, err := entity.ParseStationType(req.StationType)
	if err != nil {
		return errorResponse(c, err)
	}
	region, err := entity.ParseRegion(req.Region)
	if err != nil {
		return errorResponse(c, err)
	}
	sel, err := toSelector("selectors", req.Selectors)
	if err != nil {
		return errorResponse(c, err)
	}

	codes, err := controller.useCase.ResolveStations(c.Request().Context(), stationType, region, sel)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.ResolvedCodesResponse{Codes: codes})
}

func bindBody(c echo.Context, dest any) error {
	if err := c.Bind(dest); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", model.ErrValidation, err)
	}
	return nil
}

func toSelector(field string, dto model.SelectorDTO) (entity.Selector, error) {
	if !dto.IsSet() {
		return entity.Selector{}, fmt.Errorf("%w: %s is required", model.ErrValidation, field)
	}
	if dto.All {
		return entity.AllSelectors(), nil
	}
	return entity.ExplicitSelectors(dto.Items...), nil
}
