// Package service
package service

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
)

type AirlineService struct {
	logger log.LoggerInterface
	core   *surety.Core
}

func NewAirlineService(logger log.LoggerInterface, core *surety.Core) *AirlineService {
	return &AirlineService{
		logger: logger,
		core:   core,
	}
}

var (
	SuccessRegisterAirline = ApiStatus{StatusName: "REGISTER_AIRLINE_SUCCESS", Description: "airline registered", HttpCode: Ok}
	SuccessVoteAirline     = ApiStatus{StatusName: "VOTE_RECORDED", Description: "vote recorded, airline not registered yet", HttpCode: Ok}
)

func (airlineService *AirlineService) RegisterAirline(req *RequestRegisterAirline) *ApiResponse[ResponseRegisterAirline] {
	candidate := NewIdentity(req.Candidate)
	if candidate.IsEmpty() {
		return NewApiResponse[ResponseRegisterAirline](&ErrIllegalParam, Unsatisfied, nil)
	}
	if err := identityValidator.CheckString(candidate.String()); err != nil {
		return NewApiResponse[ResponseRegisterAirline](err, Unsatisfied, nil)
	}
	result, res := CallCoreFuncAndCheckError[surety.RegistrationResult, ResponseRegisterAirline](airlineService.logger, func() (*surety.RegistrationResult, error) {
		return airlineService.core.RegisterAirline(req.Caller(), candidate)
	})
	if res != nil {
		return res
	}
	status := &SuccessVoteAirline
	if result.Registered {
		status = &SuccessRegisterAirline
	}
	return NewApiResponse(status, Unsatisfied, (*ResponseRegisterAirline)(result))
}

var SuccessFundAirline = ApiStatus{StatusName: "FUND_AIRLINE_SUCCESS", Description: "airline funded", HttpCode: Ok}

func (airlineService *AirlineService) FundAirline(req *RequestFundAirline) *ApiResponse[ResponseFundAirline] {
	amount, status := parseAmount(req.Value)
	if status != nil {
		return NewApiResponse[ResponseFundAirline](status, Unsatisfied, nil)
	}
	if _, res := CallCoreFuncAndCheckError[any, ResponseFundAirline](airlineService.logger, func() (*any, error) {
		return nil, airlineService.core.FundAirline(req.Caller(), amount)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessFundAirline, Unsatisfied, &ResponseFundAirline{
		Airline: req.Identity,
		Amount:  amount,
	})
}

var SuccessGetAirline = ApiStatus{StatusName: "GET_AIRLINE_SUCCESS", Description: "airline found", HttpCode: Ok}

func (airlineService *AirlineService) GetAirline(req *RequestGetAirline) *ApiResponse[ResponseGetAirline] {
	identity := NewIdentity(req.Identity)
	if identity.IsEmpty() {
		return NewApiResponse[ResponseGetAirline](&ErrIllegalParam, Unsatisfied, nil)
	}
	airline, res := CallCoreFuncAndCheckError[operation.Airline, ResponseGetAirline](airlineService.logger, func() (*operation.Airline, error) {
		return airlineService.core.Airline(identity)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAirline, Unsatisfied, (*ResponseGetAirline)(airline))
}

var SuccessGetAirlines = ApiStatus{StatusName: "GET_AIRLINES_SUCCESS", Description: "airlines listed", HttpCode: Ok}

func (airlineService *AirlineService) GetAirlines(req *RequestGetAirlines) *ApiResponse[ResponseGetAirlines] {
	req.Normalize(global.QueryPageSizeMax)
	var total int64
	airlines, res := CallCoreFuncAndCheckError[[]*operation.Airline, ResponseGetAirlines](airlineService.logger, func() (*[]*operation.Airline, error) {
		airlines, count, err := airlineService.core.Airlines(req.Page, req.PageSize)
		total = count
		return &airlines, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAirlines, Unsatisfied, (*ResponseGetAirlines)(pageOf(*airlines, &req.PageQuery, total)))
}

var SuccessGetAirlineVotes = ApiStatus{StatusName: "GET_VOTES_SUCCESS", Description: "votes listed", HttpCode: Ok}

func (airlineService *AirlineService) GetAirlineVotes(req *RequestGetAirline) *ApiResponse[ResponseGetAirlineVotes] {
	candidate := NewIdentity(req.Identity)
	if candidate.IsEmpty() {
		return NewApiResponse[ResponseGetAirlineVotes](&ErrIllegalParam, Unsatisfied, nil)
	}
	voters, res := CallCoreFuncAndCheckError[[]Identity, ResponseGetAirlineVotes](airlineService.logger, func() (*[]Identity, error) {
		voters, err := airlineService.core.Votes(candidate)
		return &voters, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAirlineVotes, Unsatisfied, &ResponseGetAirlineVotes{
		Candidate: candidate.String(),
		Voters:    *voters,
	})
}
