// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"time"
)

type HttpServerLimit struct {
	RateLimit         int           `json:"rate_limit"`
	RateLimitWindow   string        `json:"rate_limit_window"`
	RateLimitDuration time.Duration `json:"-"`
	IdentityLengthMin int           `json:"identity_length_min"`
	IdentityLengthMax int           `json:"identity_length_max"`
	PasswordLengthMin int           `json:"password_length_min"`
	PasswordLengthMax int           `json:"password_length_max"`
	DesignatorMaxLen  int           `json:"designator_max_length"`
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:         60,
		RateLimitWindow:   "1m",
		IdentityLengthMin: 4,
		IdentityLengthMax: 64,
		PasswordLengthMin: 6,
		PasswordLengthMax: 64,
		DesignatorMaxLen:  16,
	}
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if result := parseDuration("http_server.limits.rate_limit_window", config.RateLimitWindow, &config.RateLimitDuration); result.IsFail() {
		return result
	}

	if config.IdentityLengthMin <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.identity_length_min, value must larger than 0"))
	}
	if config.IdentityLengthMax > 64 {
		return ValidFail(errors.New("invalid json field http_server.limits.identity_length_max, value must less than 64"))
	}
	if config.IdentityLengthMin >= config.IdentityLengthMax {
		return ValidFail(errors.New("invalid json field http_server.limits.identity_length_min, value must less than http_server.limits.identity_length_max"))
	}

	if config.PasswordLengthMin <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_min, value must larger than 0"))
	}
	if config.PasswordLengthMax > 72 {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_max, bcrypt only accepts 72 bytes"))
	}
	if config.PasswordLengthMin >= config.PasswordLengthMax {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_min, value must less than http_server.limits.password_length_max"))
	}

	if config.DesignatorMaxLen <= 0 || config.DesignatorMaxLen > 32 {
		return ValidFail(errors.New("invalid json field http_server.limits.designator_max_length, value must between 1 and 32"))
	}

	return ValidPass()
}
