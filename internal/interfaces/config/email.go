// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"gopkg.in/gomail.v2"
)

type EmailConfig struct {
	Enabled     bool           `json:"enabled"`
	Host        string         `json:"host"`
	Port        int            `json:"port"`
	EmailServer *gomail.Dialer `json:"-"`
	Username    string         `json:"username"`
	Password    string         `json:"password"`
	Recipients  []string       `json:"recipients"`
}

func defaultEmailConfig() *EmailConfig {
	return &EmailConfig{
		Enabled:    false,
		Host:       "smtp.example.com",
		Port:       465,
		Username:   "surety@example.com",
		Password:   "123456",
		Recipients: make([]string, 0),
	}
}

func (config *EmailConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}

	if len(config.Recipients) == 0 {
		logger.Warn("email is enabled but email.recipients is empty, no notification will be sent")
	}

	config.EmailServer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dial, err := config.EmailServer.Dial()
	if err != nil {
		return ValidFailWith(errors.New("connecting to smtp server fail"), err)
	}
	_ = dial.Close()

	return ValidPass()
}
