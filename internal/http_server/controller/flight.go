// Package controller
package controller

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type FlightControllerInterface interface {
	RegisterFlight(ctx echo.Context) error
	GetFlight(ctx echo.Context) error
	GetFlights(ctx echo.Context) error
	RequestStatus(ctx echo.Context) error
}

type FlightController struct {
	logger  log.LoggerInterface
	service FlightServiceInterface
}

func NewFlightController(logger log.LoggerInterface, service FlightServiceInterface) *FlightController {
	return &FlightController{
		logger:  logger,
		service: service,
	}
}

func (controller *FlightController) RegisterFlight(ctx echo.Context) error {
	data := &RequestRegisterFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.RegisterFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeaderOf(ctx)
	return controller.service.RegisterFlight(data).Response(ctx)
}

func (controller *FlightController) GetFlight(ctx echo.Context) error {
	data := &RequestGetFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetFlight(data).Response(ctx)
}

func (controller *FlightController) GetFlights(ctx echo.Context) error {
	data := &RequestGetFlights{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetFlights bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetFlights(data).Response(ctx)
}

func (controller *FlightController) RequestStatus(ctx echo.Context) error {
	data := &RequestFlightStatus{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.RequestStatus bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeaderOf(ctx)
	return controller.service.RequestStatus(data).Response(ctx)
}
