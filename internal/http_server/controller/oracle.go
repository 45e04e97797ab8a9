// Package controller
package controller

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type OracleControllerInterface interface {
	RegisterOracle(ctx echo.Context) error
	GetIndexes(ctx echo.Context) error
	SubmitResponse(ctx echo.Context) error
	GetRequest(ctx echo.Context) error
}

type OracleController struct {
	logger  log.LoggerInterface
	service OracleServiceInterface
}

func NewOracleController(logger log.LoggerInterface, service OracleServiceInterface) *OracleController {
	return &OracleController{
		logger:  logger,
		service: service,
	}
}

func (controller *OracleController) RegisterOracle(ctx echo.Context) error {
	data := &RequestRegisterOracle{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("OracleController.RegisterOracle bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeaderOf(ctx)
	return controller.service.RegisterOracle(data).Response(ctx)
}

func (controller *OracleController) GetIndexes(ctx echo.Context) error {
	data := &RequestOracleIndexes{JwtHeader: jwtHeaderOf(ctx)}
	return controller.service.GetIndexes(data).Response(ctx)
}

func (controller *OracleController) SubmitResponse(ctx echo.Context) error {
	data := &RequestSubmitResponse{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("OracleController.SubmitResponse bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeaderOf(ctx)
	return controller.service.SubmitResponse(data).Response(ctx)
}

func (controller *OracleController) GetRequest(ctx echo.Context) error {
	data := &RequestGetOracleRequest{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("OracleController.GetRequest bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetRequest(data).Response(ctx)
}
