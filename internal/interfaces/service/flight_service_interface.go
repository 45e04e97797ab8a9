// Package service
package service

import "github.com/half-nothing/simple-surety/internal/interfaces/operation"

type FlightServiceInterface interface {
	RegisterFlight(req *RequestRegisterFlight) *ApiResponse[ResponseRegisterFlight]
	GetFlight(req *RequestGetFlight) *ApiResponse[ResponseGetFlight]
	GetFlights(req *RequestGetFlights) *ApiResponse[ResponseGetFlights]
	RequestStatus(req *RequestFlightStatus) *ApiResponse[ResponseFlightStatus]
}

type RequestRegisterFlight struct {
	JwtHeader
	Designator    string `json:"designator"`
	DepartureTime int64  `json:"departure_time"`
}

type ResponseRegisterFlight operation.Flight

type RequestGetFlight struct {
	FlightParam
}

type ResponseGetFlight operation.Flight

type RequestGetFlights struct {
	PageQuery
	Airline string `param:"identity"`
}

type ResponseGetFlights PageResponse[operation.Flight]

type RequestFlightStatus struct {
	JwtHeader
	FlightParam
}

type ResponseFlightStatus struct {
	Index         int    `json:"index"`
	Airline       string `json:"airline"`
	Designator    string `json:"designator"`
	DepartureTime int64  `json:"departure_time"`
}
