// Package service
package service

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
	"strings"
)

type FlightService struct {
	logger log.LoggerInterface
	core   *surety.Core
}

func NewFlightService(logger log.LoggerInterface, core *surety.Core) *FlightService {
	return &FlightService{
		logger: logger,
		core:   core,
	}
}

var SuccessRegisterFlight = ApiStatus{StatusName: "REGISTER_FLIGHT_SUCCESS", Description: "flight registered", HttpCode: Ok}

func (flightService *FlightService) RegisterFlight(req *RequestRegisterFlight) *ApiResponse[ResponseRegisterFlight] {
	if err := designatorValidator.CheckString(strings.TrimSpace(req.Designator)); err != nil {
		return NewApiResponse[ResponseRegisterFlight](err, Unsatisfied, nil)
	}
	if req.DepartureTime <= 0 {
		return NewApiResponse[ResponseRegisterFlight](&ErrIllegalParam, Unsatisfied, nil)
	}
	flight, res := CallCoreFuncAndCheckError[operation.Flight, ResponseRegisterFlight](flightService.logger, func() (*operation.Flight, error) {
		return flightService.core.RegisterFlight(req.Caller(), req.Designator, req.DepartureTime)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessRegisterFlight, Unsatisfied, (*ResponseRegisterFlight)(flight))
}

var SuccessGetFlight = ApiStatus{StatusName: "GET_FLIGHT_SUCCESS", Description: "flight found", HttpCode: Ok}

func (flightService *FlightService) GetFlight(req *RequestGetFlight) *ApiResponse[ResponseGetFlight] {
	flight, res := CallCoreFuncAndCheckError[operation.Flight, ResponseGetFlight](flightService.logger, func() (*operation.Flight, error) {
		return flightService.core.Lookup(req.Key())
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetFlight, Unsatisfied, (*ResponseGetFlight)(flight))
}

var SuccessGetFlights = ApiStatus{StatusName: "GET_FLIGHTS_SUCCESS", Description: "flights listed", HttpCode: Ok}

func (flightService *FlightService) GetFlights(req *RequestGetFlights) *ApiResponse[ResponseGetFlights] {
	airline := NewIdentity(req.Airline)
	if airline.IsEmpty() {
		return NewApiResponse[ResponseGetFlights](&ErrIllegalParam, Unsatisfied, nil)
	}
	req.Normalize(global.QueryPageSizeMax)
	var total int64
	flights, res := CallCoreFuncAndCheckError[[]*operation.Flight, ResponseGetFlights](flightService.logger, func() (*[]*operation.Flight, error) {
		flights, count, err := flightService.core.Flights(airline, req.Page, req.PageSize)
		total = count
		return &flights, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetFlights, Unsatisfied, (*ResponseGetFlights)(pageOf(*flights, &req.PageQuery, total)))
}

var SuccessRequestStatus = ApiStatus{StatusName: "REQUEST_STATUS_SUCCESS", Description: "oracle request opened", HttpCode: Ok}

func (flightService *FlightService) RequestStatus(req *RequestFlightStatus) *ApiResponse[ResponseFlightStatus] {
	key := req.Key()
	index, res := CallCoreFuncAndCheckError[int, ResponseFlightStatus](flightService.logger, func() (*int, error) {
		index, err := flightService.core.RequestStatus(req.Caller(), key)
		return &index, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessRequestStatus, Unsatisfied, &ResponseFlightStatus{
		Index:         *index,
		Airline:       key.Airline.String(),
		Designator:    key.Designator,
		DepartureTime: key.DepartureTime,
	})
}
