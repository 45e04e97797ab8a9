// Package service
package service

import "github.com/half-nothing/simple-surety/internal/interfaces/surety"

type GovernanceServiceInterface interface {
	GetOperatingStatus() *ApiResponse[ResponseOperatingStatus]
	SetOperatingStatus(req *RequestSetOperatingStatus) *ApiResponse[ResponseOperatingStatus]
	AuthorizeCaller(req *RequestAuthorizeCaller) *ApiResponse[ResponseAuthorizeCaller]
	DeauthorizeCaller(req *RequestAuthorizeCaller) *ApiResponse[ResponseAuthorizeCaller]
}

// LedgerAll addresses every ledger at once
const LedgerAll = "all"

type ResponseOperatingStatus map[surety.Ledger]bool

type RequestSetOperatingStatus struct {
	JwtHeader
	Ledger  string `param:"ledger"`
	Enabled bool   `json:"enabled"`
}

type RequestAuthorizeCaller struct {
	JwtHeader
	Target string `param:"identity"`
}

type ResponseAuthorizeCaller struct {
	Identity   string `json:"identity"`
	Authorized bool   `json:"authorized"`
}
