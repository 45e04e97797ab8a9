// Package service
package service

import "github.com/half-nothing/simple-surety/internal/interfaces/operation"

type AccountServiceInterface interface {
	Register(req *RequestAccountRegister) *ApiResponse[ResponseAccountRegister]
	Login(req *RequestAccountLogin) *ApiResponse[ResponseAccountLogin]
	GetToken(req *RequestGetToken) *ApiResponse[ResponseGetToken]
}

type RequestAccountRegister struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

type ResponseAccountRegister struct {
	Account    *operation.Account `json:"account"`
	Token      string             `json:"token"`
	FlushToken string             `json:"flush_token"`
}

type RequestAccountLogin struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

type ResponseAccountLogin ResponseAccountRegister

type RequestGetToken struct {
	JwtHeader
	FlushToken bool
}

type ResponseGetToken ResponseAccountRegister
