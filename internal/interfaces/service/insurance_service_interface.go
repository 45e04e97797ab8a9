// Package service
package service

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"github.com/half-nothing/simple-surety/internal/interfaces/surety"
	impl "github.com/half-nothing/simple-surety/internal/surety"
)

type InsuranceServiceInterface interface {
	BuyInsurance(req *RequestBuyInsurance) *ApiResponse[ResponseBuyInsurance]
	GetPolicies(req *RequestGetPolicies) *ApiResponse[ResponseGetPolicies]
	ClaimInsurance(req *RequestClaimInsurance) *ApiResponse[ResponseClaimInsurance]
	GetBalance(req *RequestGetBalance) *ApiResponse[ResponseGetBalance]
	GetTransfers(req *RequestGetTransfers) *ApiResponse[ResponseGetTransfers]
}

type RequestBuyInsurance struct {
	JwtHeader
	Airline       string `json:"airline"`
	Designator    string `json:"designator"`
	DepartureTime int64  `json:"departure_time"`
	Premium       string `json:"premium"`
}

type ResponseBuyInsurance operation.InsurancePolicy

type RequestGetPolicies struct {
	JwtHeader
}

type ResponseGetPolicies []*operation.InsurancePolicy

type RequestClaimInsurance struct {
	JwtHeader
}

type ResponseClaimInsurance impl.ClaimResult

type RequestGetBalance struct {
	JwtHeader
}

type ResponseGetBalance struct {
	Identity string        `json:"identity"`
	Paid     surety.Amount `json:"paid"`
	Reserve  surety.Amount `json:"reserve"`
}

type RequestGetTransfers struct {
	JwtHeader
	PageQuery
}

type ResponseGetTransfers PageResponse[operation.Transfer]
