// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"slices"
)

var allowedStatusCodes = []int{0, 10, 20, 30, 40, 50}

type OracleRelayConfig struct {
	Enabled      bool   `json:"enabled"`
	OracleCount  int    `json:"oracle_count"`
	StatusCode   int    `json:"status_code"`
	RandomStatus bool   `json:"random_status"`
	IdentityHead string `json:"identity_head"`
}

func defaultOracleRelayConfig() *OracleRelayConfig {
	return &OracleRelayConfig{
		Enabled:      true,
		OracleCount:  20,
		StatusCode:   20,
		RandomStatus: false,
		IdentityHead: "oracle-",
	}
}

func (config *OracleRelayConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}
	if config.OracleCount <= 0 {
		return ValidFail(errors.New("invalid json field server.oracle_relay.oracle_count, value must larger than 0"))
	}
	if config.OracleCount < 3 {
		logger.WarnF("server.oracle_relay.oracle_count is %d, requests will rarely reach quorum", config.OracleCount)
	}
	if !slices.Contains(allowedStatusCodes, config.StatusCode) {
		return ValidFail(errors.New("invalid json field server.oracle_relay.status_code, value must be one of 0, 10, 20, 30, 40, 50"))
	}
	return ValidPass()
}
