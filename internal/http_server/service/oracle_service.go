// Package service
package service

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
)

type OracleService struct {
	logger log.LoggerInterface
	core   *surety.Core
}

func NewOracleService(logger log.LoggerInterface, core *surety.Core) *OracleService {
	return &OracleService{
		logger: logger,
		core:   core,
	}
}

var SuccessRegisterOracle = ApiStatus{StatusName: "REGISTER_ORACLE_SUCCESS", Description: "oracle registered", HttpCode: Ok}

func (oracleService *OracleService) RegisterOracle(req *RequestRegisterOracle) *ApiResponse[ResponseOracleIndexes] {
	fee, status := parseAmount(req.Fee)
	if status != nil {
		return NewApiResponse[ResponseOracleIndexes](status, Unsatisfied, nil)
	}
	indexes, res := CallCoreFuncAndCheckError[[3]int, ResponseOracleIndexes](oracleService.logger, func() (*[3]int, error) {
		indexes, err := oracleService.core.RegisterOracle(req.Caller(), fee)
		return &indexes, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessRegisterOracle, Unsatisfied, &ResponseOracleIndexes{
		Oracle:  req.Identity,
		Indexes: *indexes,
	})
}

var SuccessGetIndexes = ApiStatus{StatusName: "GET_INDEXES_SUCCESS", Description: "oracle indexes found", HttpCode: Ok}

func (oracleService *OracleService) GetIndexes(req *RequestOracleIndexes) *ApiResponse[ResponseOracleIndexes] {
	indexes, res := CallCoreFuncAndCheckError[[3]int, ResponseOracleIndexes](oracleService.logger, func() (*[3]int, error) {
		indexes, err := oracleService.core.OracleIndexes(req.Caller())
		return &indexes, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetIndexes, Unsatisfied, &ResponseOracleIndexes{
		Oracle:  req.Identity,
		Indexes: *indexes,
	})
}

var (
	SuccessSubmitResponse = ApiStatus{StatusName: "SUBMIT_RESPONSE_SUCCESS", Description: "response counted", HttpCode: Ok}
	SuccessFinalized      = ApiStatus{StatusName: "REQUEST_FINALIZED", Description: "request finalized", HttpCode: Ok}
)

func (oracleService *OracleService) SubmitResponse(req *RequestSubmitResponse) *ApiResponse[ResponseSubmitResponse] {
	key := NewFlightKey(NewIdentity(req.Airline), req.Designator, req.DepartureTime)
	result, res := CallCoreFuncAndCheckError[surety.ResponseResult, ResponseSubmitResponse](oracleService.logger, func() (*surety.ResponseResult, error) {
		return oracleService.core.SubmitResponse(req.Caller(), req.Index, key, StatusCode(req.StatusCode))
	})
	if res != nil {
		return res
	}
	status := &SuccessSubmitResponse
	if result.Finalized {
		status = &SuccessFinalized
	}
	return NewApiResponse(status, Unsatisfied, (*ResponseSubmitResponse)(result))
}

var SuccessGetRequest = ApiStatus{StatusName: "GET_REQUEST_SUCCESS", Description: "oracle request found", HttpCode: Ok}

func (oracleService *OracleService) GetRequest(req *RequestGetOracleRequest) *ApiResponse[ResponseGetOracleRequest] {
	request, res := CallCoreFuncAndCheckError[operation.OracleRequest, ResponseGetOracleRequest](oracleService.logger, func() (*operation.OracleRequest, error) {
		return oracleService.core.Request(req.Index, req.Key())
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetRequest, Unsatisfied, (*ResponseGetOracleRequest)(request))
}
