// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
)

type Config struct {
	ConfigVersion string          `json:"config_version"`
	Server        *ServerConfig   `json:"server"`
	Surety        *SuretyConfig   `json:"surety"`
	Database      *DatabaseConfig `json:"database"`
	Archive       *ArchiveConfig  `json:"archive"`
	Email         *EmailConfig    `json:"email"`
}

func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: ConfVersion.String(),
		Server:        defaultServerConfig(),
		Surety:        defaultSuretyConfig(),
		Database:      defaultDatabaseConfig(),
		Archive:       defaultArchiveConfig(),
		Email:         defaultEmailConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if version, err := newVersion(c.ConfigVersion); err != nil {
		return ValidFailWith(errors.New("version string parse fail"), err)
	} else if result := ConfVersion.checkVersion(version); result != AllMatch {
		return ValidFail(fmt.Errorf("config version mismatch, expected %s, got %s", ConfVersion.String(), version.String()))
	}
	if result := c.Database.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Surety.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Server.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Archive.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Email.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
