// Package controller
package controller

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type RelayController struct {
	logger  log.LoggerInterface
	service RelayServiceInterface
}

func NewRelayController(logger log.LoggerInterface, service RelayServiceInterface) *RelayController {
	return &RelayController{
		logger:  logger,
		service: service,
	}
}

func (controller *RelayController) GetRelayStatus(ctx echo.Context) error {
	return controller.service.GetRelayStatus().Response(ctx)
}

func (controller *RelayController) SetRelayStatus(ctx echo.Context) error {
	data := &RequestSetRelayStatus{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("RelayController.SetRelayStatus bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeaderOf(ctx)
	return controller.service.SetRelayStatus(data).Response(ctx)
}
