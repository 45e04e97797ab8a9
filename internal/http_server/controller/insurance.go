// Package controller
package controller

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type InsuranceControllerInterface interface {
	BuyInsurance(ctx echo.Context) error
	GetPolicies(ctx echo.Context) error
	ClaimInsurance(ctx echo.Context) error
	GetBalance(ctx echo.Context) error
	GetTransfers(ctx echo.Context) error
}

type InsuranceController struct {
	logger  log.LoggerInterface
	service InsuranceServiceInterface
}

func NewInsuranceController(logger log.LoggerInterface, service InsuranceServiceInterface) *InsuranceController {
	return &InsuranceController{
		logger:  logger,
		service: service,
	}
}

func (controller *InsuranceController) BuyInsurance(ctx echo.Context) error {
	data := &RequestBuyInsurance{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("InsuranceController.BuyInsurance bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeaderOf(ctx)
	return controller.service.BuyInsurance(data).Response(ctx)
}

func (controller *InsuranceController) GetPolicies(ctx echo.Context) error {
	data := &RequestGetPolicies{JwtHeader: jwtHeaderOf(ctx)}
	return controller.service.GetPolicies(data).Response(ctx)
}

func (controller *InsuranceController) ClaimInsurance(ctx echo.Context) error {
	data := &RequestClaimInsurance{JwtHeader: jwtHeaderOf(ctx)}
	return controller.service.ClaimInsurance(data).Response(ctx)
}

func (controller *InsuranceController) GetBalance(ctx echo.Context) error {
	data := &RequestGetBalance{JwtHeader: jwtHeaderOf(ctx)}
	return controller.service.GetBalance(data).Response(ctx)
}

func (controller *InsuranceController) GetTransfers(ctx echo.Context) error {
	data := &RequestGetTransfers{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("InsuranceController.GetTransfers bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeaderOf(ctx)
	return controller.service.GetTransfers(data).Response(ctx)
}
