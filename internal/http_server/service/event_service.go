// Package service
package service

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
)

type EventService struct {
	logger log.LoggerInterface
	core   *surety.Core
}

func NewEventService(logger log.LoggerInterface, core *surety.Core) *EventService {
	return &EventService{
		logger: logger,
		core:   core,
	}
}

var SuccessGetEvents = ApiStatus{StatusName: "GET_EVENTS_SUCCESS", Description: "events listed", HttpCode: Ok}

func (eventService *EventService) GetEvents(req *RequestGetEvents) *ApiResponse[ResponseGetEvents] {
	if req.Limit <= 0 || req.Limit > global.QueryPageSizeMax {
		req.Limit = global.QueryPageSizeMax
	}
	events, res := CallCoreFuncAndCheckError[[]*Observation, ResponseGetEvents](eventService.logger, func() (*[]*Observation, error) {
		events, err := eventService.core.Events(req.After, req.Limit)
		return &events, err
	})
	if res != nil {
		return res
	}
	next := req.After
	if length := len(*events); length > 0 {
		next = (*events)[length-1].ID
	}
	return NewApiResponse(&SuccessGetEvents, Unsatisfied, &ResponseGetEvents{Events: *events, Next: next})
}
