// Package controller
package controller

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AirlineControllerInterface interface {
	RegisterAirline(ctx echo.Context) error
	FundAirline(ctx echo.Context) error
	GetAirline(ctx echo.Context) error
	GetAirlines(ctx echo.Context) error
	GetAirlineVotes(ctx echo.Context) error
}

type AirlineController struct {
	logger  log.LoggerInterface
	service AirlineServiceInterface
}

func NewAirlineController(logger log.LoggerInterface, service AirlineServiceInterface) *AirlineController {
	return &AirlineController{
		logger:  logger,
		service: service,
	}
}

func (controller *AirlineController) RegisterAirline(ctx echo.Context) error {
	data := &RequestRegisterAirline{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AirlineController.RegisterAirline bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeaderOf(ctx)
	return controller.service.RegisterAirline(data).Response(ctx)
}

func (controller *AirlineController) FundAirline(ctx echo.Context) error {
	data := &RequestFundAirline{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AirlineController.FundAirline bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeaderOf(ctx)
	return controller.service.FundAirline(data).Response(ctx)
}

func (controller *AirlineController) GetAirline(ctx echo.Context) error {
	data := &RequestGetAirline{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AirlineController.GetAirline bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetAirline(data).Response(ctx)
}

func (controller *AirlineController) GetAirlines(ctx echo.Context) error {
	data := &RequestGetAirlines{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AirlineController.GetAirlines bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetAirlines(data).Response(ctx)
}

func (controller *AirlineController) GetAirlineVotes(ctx echo.Context) error {
	data := &RequestGetAirline{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AirlineController.GetAirlineVotes bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetAirlineVotes(data).Response(ctx)
}
