// Package service
package service

type RelayServiceInterface interface {
	GetRelayStatus() *ApiResponse[ResponseRelayStatus]
	SetRelayStatus(req *RequestSetRelayStatus) *ApiResponse[ResponseRelayStatus]
}

type RequestSetRelayStatus struct {
	JwtHeader
	StatusCode int  `json:"status_code"`
	Random     bool `json:"random"`
}

type ResponseRelayStatus struct {
	Enabled    bool `json:"enabled"`
	Oracles    int  `json:"oracles"`
	StatusCode int  `json:"status_code"`
	Random     bool `json:"random"`
}
