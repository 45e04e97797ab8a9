// Package service
package service

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
)

type GovernanceService struct {
	logger log.LoggerInterface
	core   *surety.Core
}

func NewGovernanceService(logger log.LoggerInterface, core *surety.Core) *GovernanceService {
	return &GovernanceService{
		logger: logger,
		core:   core,
	}
}

func (governanceService *GovernanceService) status() (*ResponseOperatingStatus, *ApiResponse[ResponseOperatingStatus]) {
	return CallCoreFuncAndCheckError[ResponseOperatingStatus, ResponseOperatingStatus](governanceService.logger, func() (*ResponseOperatingStatus, error) {
		status, err := governanceService.core.OperatingStatus()
		response := ResponseOperatingStatus(status)
		return &response, err
	})
}

var SuccessGetOperatingStatus = ApiStatus{StatusName: "GET_OPERATING_STATUS_SUCCESS", Description: "operating status found", HttpCode: Ok}

func (governanceService *GovernanceService) GetOperatingStatus() *ApiResponse[ResponseOperatingStatus] {
	status, res := governanceService.status()
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetOperatingStatus, Unsatisfied, status)
}

var SuccessSetOperatingStatus = ApiStatus{StatusName: "SET_OPERATING_STATUS_SUCCESS", Description: "operating status changed", HttpCode: Ok}

func (governanceService *GovernanceService) SetOperatingStatus(req *RequestSetOperatingStatus) *ApiResponse[ResponseOperatingStatus] {
	if !req.HasPermission(operation.AdminEntry) {
		return NewApiResponse[ResponseOperatingStatus](&ErrNoPermission, Unsatisfied, nil)
	}
	if _, res := CallCoreFuncAndCheckError[any, ResponseOperatingStatus](governanceService.logger, func() (*any, error) {
		if req.Ledger == LedgerAll {
			return nil, governanceService.core.SetOperatingStatus(req.Caller(), req.Enabled)
		}
		return nil, governanceService.core.SetLedgerStatus(req.Caller(), Ledger(req.Ledger), req.Enabled)
	}); res != nil {
		return res
	}
	status, res := governanceService.status()
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessSetOperatingStatus, Unsatisfied, status)
}

var (
	SuccessAuthorizeCaller   = ApiStatus{StatusName: "AUTHORIZE_CALLER_SUCCESS", Description: "caller authorized", HttpCode: Ok}
	SuccessDeauthorizeCaller = ApiStatus{StatusName: "DEAUTHORIZE_CALLER_SUCCESS", Description: "caller deauthorized", HttpCode: Ok}
)

func (governanceService *GovernanceService) AuthorizeCaller(req *RequestAuthorizeCaller) *ApiResponse[ResponseAuthorizeCaller] {
	if !req.HasPermission(operation.AdminEntry) {
		return NewApiResponse[ResponseAuthorizeCaller](&ErrNoPermission, Unsatisfied, nil)
	}
	target := NewIdentity(req.Target)
	if _, res := CallCoreFuncAndCheckError[any, ResponseAuthorizeCaller](governanceService.logger, func() (*any, error) {
		return nil, governanceService.core.AuthorizeCaller(req.Caller(), target)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessAuthorizeCaller, Unsatisfied, &ResponseAuthorizeCaller{Identity: target.String(), Authorized: true})
}

func (governanceService *GovernanceService) DeauthorizeCaller(req *RequestAuthorizeCaller) *ApiResponse[ResponseAuthorizeCaller] {
	if !req.HasPermission(operation.AdminEntry) {
		return NewApiResponse[ResponseAuthorizeCaller](&ErrNoPermission, Unsatisfied, nil)
	}
	target := NewIdentity(req.Target)
	if _, res := CallCoreFuncAndCheckError[any, ResponseAuthorizeCaller](governanceService.logger, func() (*any, error) {
		return nil, governanceService.core.DeauthorizeCaller(req.Caller(), target)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessDeauthorizeCaller, Unsatisfied, &ResponseAuthorizeCaller{Identity: target.String(), Authorized: false})
}
