// Package service
package service

import "github.com/half-nothing/simple-surety/internal/interfaces/surety"

type EventServiceInterface interface {
	GetEvents(req *RequestGetEvents) *ApiResponse[ResponseGetEvents]
}

type RequestGetEvents struct {
	After uint `query:"after"`
	Limit int  `query:"limit"`
}

type ResponseGetEvents struct {
	Events []*surety.Observation `json:"events"`
	// Next is the cursor for the following poll
	Next uint `json:"next"`
}
