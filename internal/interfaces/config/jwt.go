// Package config
package config

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/thanhpk/randstr"
	"time"
)

type JWTConfig struct {
	Secret          string        `json:"secret"`
	ExpiresTime     string        `json:"expires_time"`
	ExpiresDuration time.Duration `json:"-"`
	RefreshTime     string        `json:"refresh_time"`
	RefreshDuration time.Duration `json:"-"`
}

func defaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		Secret:      randstr.String(64),
		ExpiresTime: "15m",
		RefreshTime: "24h",
	}
}

func (config *JWTConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if result := parseDuration("http_server.jwt.expires_time", config.ExpiresTime, &config.ExpiresDuration); result.IsFail() {
		return result
	}

	if result := parseDuration("http_server.jwt.refresh_time", config.RefreshTime, &config.RefreshDuration); result.IsFail() {
		return result
	}

	if config.Secret == "" {
		config.Secret = randstr.String(64)
		logger.Warn("jwt secret is empty, a random secret was generated and tokens will not survive a restart")
	}

	return ValidPass()
}
