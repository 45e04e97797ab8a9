// Package controller
package controller

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	logger  log.LoggerInterface
	service EventServiceInterface
}

func NewEventController(logger log.LoggerInterface, service EventServiceInterface) *EventController {
	return &EventController{
		logger:  logger,
		service: service,
	}
}

func (controller *EventController) GetEvents(ctx echo.Context) error {
	data := &RequestGetEvents{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("EventController.GetEvents bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetEvents(data).Response(ctx)
}
