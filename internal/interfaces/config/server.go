// Package config
package config

import "github.com/half-nothing/simple-surety/internal/interfaces/log"

type ServerConfig struct {
	General     *GeneralConfig     `json:"general"`
	HttpServer  *HttpServerConfig  `json:"http_server"`
	OracleRelay *OracleRelayConfig `json:"oracle_relay"`
}

func defaultServerConfig() *ServerConfig {
	return &ServerConfig{
		General:     defaultGeneralConfig(),
		HttpServer:  defaultHttpServerConfig(),
		OracleRelay: defaultOracleRelayConfig(),
	}
}

func (config *ServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if result := config.General.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.HttpServer.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.OracleRelay.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
