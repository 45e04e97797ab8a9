// Package controller
package controller

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type GovernanceControllerInterface interface {
	GetOperatingStatus(ctx echo.Context) error
	SetOperatingStatus(ctx echo.Context) error
	AuthorizeCaller(ctx echo.Context) error
	DeauthorizeCaller(ctx echo.Context) error
}

type GovernanceController struct {
	logger  log.LoggerInterface
	service GovernanceServiceInterface
}

func NewGovernanceController(logger log.LoggerInterface, service GovernanceServiceInterface) *GovernanceController {
	return &GovernanceController{
		logger:  logger,
		service: service,
	}
}

func (controller *GovernanceController) GetOperatingStatus(ctx echo.Context) error {
	return controller.service.GetOperatingStatus().Response(ctx)
}

func (controller *GovernanceController) SetOperatingStatus(ctx echo.Context) error {
	data := &RequestSetOperatingStatus{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("GovernanceController.SetOperatingStatus bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeaderOf(ctx)
	return controller.service.SetOperatingStatus(data).Response(ctx)
}

func (controller *GovernanceController) AuthorizeCaller(ctx echo.Context) error {
	data := &RequestAuthorizeCaller{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("GovernanceController.AuthorizeCaller bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeaderOf(ctx)
	return controller.service.AuthorizeCaller(data).Response(ctx)
}

func (controller *GovernanceController) DeauthorizeCaller(ctx echo.Context) error {
	data := &RequestAuthorizeCaller{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("GovernanceController.DeauthorizeCaller bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeaderOf(ctx)
	return controller.service.DeauthorizeCaller(data).Response(ctx)
}
