// Package service
package service

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"github.com/half-nothing/simple-surety/internal/interfaces/surety"
	impl "github.com/half-nothing/simple-surety/internal/surety"
)

type AirlineServiceInterface interface {
	RegisterAirline(req *RequestRegisterAirline) *ApiResponse[ResponseRegisterAirline]
	FundAirline(req *RequestFundAirline) *ApiResponse[ResponseFundAirline]
	GetAirline(req *RequestGetAirline) *ApiResponse[ResponseGetAirline]
	GetAirlines(req *RequestGetAirlines) *ApiResponse[ResponseGetAirlines]
	GetAirlineVotes(req *RequestGetAirline) *ApiResponse[ResponseGetAirlineVotes]
}

type RequestRegisterAirline struct {
	JwtHeader
	Candidate string `json:"candidate"`
}

type ResponseRegisterAirline impl.RegistrationResult

type RequestFundAirline struct {
	JwtHeader
	Value string `json:"value"`
}

type ResponseFundAirline struct {
	Airline string        `json:"airline"`
	Amount  surety.Amount `json:"amount"`
}

type RequestGetAirline struct {
	Identity string `param:"identity"`
}

type ResponseGetAirline operation.Airline

type RequestGetAirlines struct {
	PageQuery
}

type ResponseGetAirlines PageResponse[operation.Airline]

type ResponseGetAirlineVotes struct {
	Candidate string            `json:"candidate"`
	Voters    []surety.Identity `json:"voters"`
}
