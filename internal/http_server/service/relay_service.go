// Package service
package service

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/oracle_relay"
)

type RelayService struct {
	logger log.LoggerInterface
	relay  *oracle_relay.Relay
}

// NewRelayService accepts a nil relay when the relay is disabled
func NewRelayService(logger log.LoggerInterface, relay *oracle_relay.Relay) *RelayService {
	return &RelayService{
		logger: logger,
		relay:  relay,
	}
}

func (relayService *RelayService) response() *ResponseRelayStatus {
	if relayService.relay == nil {
		return &ResponseRelayStatus{}
	}
	status := relayService.relay.Status()
	return &ResponseRelayStatus{
		Enabled:    status.Running,
		Oracles:    status.Oracles,
		StatusCode: int(status.StatusCode),
		Random:     status.Random,
	}
}

var SuccessGetRelayStatus = ApiStatus{StatusName: "GET_RELAY_STATUS_SUCCESS", Description: "relay status found", HttpCode: Ok}

func (relayService *RelayService) GetRelayStatus() *ApiResponse[ResponseRelayStatus] {
	return NewApiResponse(&SuccessGetRelayStatus, Unsatisfied, relayService.response())
}

var (
	ErrRelayDisabled      = ApiStatus{StatusName: "RELAY_DISABLED", Description: "oracle relay is disabled", HttpCode: ServiceUnavailable}
	SuccessSetRelayStatus = ApiStatus{StatusName: "SET_RELAY_STATUS_SUCCESS", Description: "relay status changed", HttpCode: Ok}
)

func (relayService *RelayService) SetRelayStatus(req *RequestSetRelayStatus) *ApiResponse[ResponseRelayStatus] {
	if !req.HasPermission(operation.AdminEntry) {
		return NewApiResponse[ResponseRelayStatus](&ErrNoPermission, Unsatisfied, nil)
	}
	if relayService.relay == nil {
		return NewApiResponse[ResponseRelayStatus](&ErrRelayDisabled, Unsatisfied, nil)
	}
	if _, res := CallCoreFuncAndCheckError[any, ResponseRelayStatus](relayService.logger, func() (*any, error) {
		return nil, relayService.relay.SetStatus(StatusCode(req.StatusCode), req.Random)
	}); res != nil {
		return res
	}
	relayService.logger.InfoF("%s changed the relay status to %d (random: %v)", req.Identity, req.StatusCode, req.Random)
	return NewApiResponse(&SuccessSetRelayStatus, Unsatisfied, relayService.response())
}
