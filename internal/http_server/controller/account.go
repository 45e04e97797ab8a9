// Package controller
package controller

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AccountControllerInterface interface {
	Register(ctx echo.Context) error
	Login(ctx echo.Context) error
	GetToken(ctx echo.Context) error
}

type AccountController struct {
	logger  log.LoggerInterface
	service AccountServiceInterface
}

func NewAccountController(logger log.LoggerInterface, service AccountServiceInterface) *AccountController {
	return &AccountController{
		logger:  logger,
		service: service,
	}
}

func (controller *AccountController) Register(ctx echo.Context) error {
	data := &RequestAccountRegister{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AccountController.Register bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.Register(data).Response(ctx)
}

func (controller *AccountController) Login(ctx echo.Context) error {
	data := &RequestAccountLogin{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AccountController.Login bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.Login(data).Response(ctx)
}

func (controller *AccountController) GetToken(ctx echo.Context) error {
	claim := claimsOf(ctx)
	data := &RequestGetToken{
		JwtHeader:  JwtHeader{Identity: claim.Identity, Permission: claim.Permission},
		FlushToken: claim.FlushToken,
	}
	return controller.service.GetToken(data).Response(ctx)
}
