// Package service
package service

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	impl "github.com/half-nothing/simple-surety/internal/surety"
)

type OracleServiceInterface interface {
	RegisterOracle(req *RequestRegisterOracle) *ApiResponse[ResponseOracleIndexes]
	GetIndexes(req *RequestOracleIndexes) *ApiResponse[ResponseOracleIndexes]
	SubmitResponse(req *RequestSubmitResponse) *ApiResponse[ResponseSubmitResponse]
	GetRequest(req *RequestGetOracleRequest) *ApiResponse[ResponseGetOracleRequest]
}

type RequestRegisterOracle struct {
	JwtHeader
	Fee string `json:"fee"`
}

type RequestOracleIndexes struct {
	JwtHeader
}

type ResponseOracleIndexes struct {
	Oracle  string `json:"oracle"`
	Indexes [3]int `json:"indexes"`
}

type RequestSubmitResponse struct {
	JwtHeader
	Index         int    `json:"index"`
	Airline       string `json:"airline"`
	Designator    string `json:"designator"`
	DepartureTime int64  `json:"departure_time"`
	StatusCode    int    `json:"status_code"`
}

type ResponseSubmitResponse impl.ResponseResult

type RequestGetOracleRequest struct {
	FlightParam
	Index int `param:"index"`
}

type ResponseGetOracleRequest operation.OracleRequest
