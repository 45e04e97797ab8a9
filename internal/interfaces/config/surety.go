// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/thanhpk/randstr"
	"strings"
	"time"
)

type SuretyConfig struct {
	Administrator         string        `json:"administrator"`
	AdministratorPassword string        `json:"administrator_password"`
	FirstAirline          string        `json:"first_airline"`
	FirstAirlinePassword  string        `json:"first_airline_password"`
	BootstrapAirlines     int           `json:"bootstrap_airlines"` // airlines admitted without a vote
	AirlineFunding        string        `json:"airline_funding"`
	AirlineFundingValue   int64         `json:"-"`
	PremiumCap            string        `json:"premium_cap"`
	PremiumCapValue       int64         `json:"-"`
	PayoutPercent         int64         `json:"payout_percent"`
	OracleFee             string        `json:"oracle_fee"`
	OracleFeeValue        int64         `json:"-"`
	OracleIndexRange      int           `json:"oracle_index_range"`
	OracleQuorum          int           `json:"oracle_quorum"`
	PruneInterval         string        `json:"prune_interval"`
	PruneDuration         time.Duration `json:"-"`
	PruneRetention        string        `json:"prune_retention"`
	RetentionDuration     time.Duration `json:"-"`
}

func defaultSuretyConfig() *SuretyConfig {
	return &SuretyConfig{
		Administrator:         "owner",
		AdministratorPassword: randstr.String(16),
		FirstAirline:          "first-airline",
		FirstAirlinePassword:  randstr.String(16),
		BootstrapAirlines:     4,
		AirlineFunding:        "10",
		PremiumCap:            "1",
		PayoutPercent:         150,
		OracleFee:             "1",
		OracleIndexRange:      10,
		OracleQuorum:          3,
		PruneInterval:         "10m",
		PruneRetention:        "24h",
	}
}

func (config *SuretyConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	config.Administrator = strings.ToLower(strings.TrimSpace(config.Administrator))
	config.FirstAirline = strings.ToLower(strings.TrimSpace(config.FirstAirline))

	if config.Administrator == "" {
		return ValidFail(errors.New("invalid json field surety.administrator, value must not be empty"))
	}
	if config.AdministratorPassword == "" {
		return ValidFail(errors.New("invalid json field surety.administrator_password, value must not be empty"))
	}
	if config.FirstAirline == "" {
		return ValidFail(errors.New("invalid json field surety.first_airline, value must not be empty"))
	}
	if config.FirstAirline == config.Administrator {
		return ValidFail(errors.New("invalid json field surety.first_airline, the first airline must not be the administrator"))
	}
	if config.FirstAirlinePassword == "" {
		logger.Warn("surety.first_airline_password is empty, the first airline has no account and can not log in")
	}
	if config.BootstrapAirlines <= 0 {
		return ValidFail(errors.New("invalid json field surety.bootstrap_airlines, value must larger than 0"))
	}

	if result := parseValue("surety.airline_funding", config.AirlineFunding, &config.AirlineFundingValue); result.IsFail() {
		return result
	}
	if config.AirlineFundingValue <= 0 {
		return ValidFail(errors.New("invalid json field surety.airline_funding, value must larger than 0"))
	}
	if result := parseValue("surety.premium_cap", config.PremiumCap, &config.PremiumCapValue); result.IsFail() {
		return result
	}
	if config.PremiumCapValue <= 0 {
		return ValidFail(errors.New("invalid json field surety.premium_cap, value must larger than 0"))
	}
	if result := parseValue("surety.oracle_fee", config.OracleFee, &config.OracleFeeValue); result.IsFail() {
		return result
	}
	if config.OracleFeeValue < 0 {
		return ValidFail(errors.New("invalid json field surety.oracle_fee, value must not be negative"))
	}

	if config.PayoutPercent <= 0 {
		return ValidFail(errors.New("invalid json field surety.payout_percent, value must larger than 0"))
	}
	if config.PayoutPercent < 100 {
		logger.WarnF("surety.payout_percent is %d, passengers get back less than their premium", config.PayoutPercent)
	}

	if config.OracleIndexRange <= 0 || config.OracleIndexRange > 256 {
		return ValidFail(errors.New("invalid json field surety.oracle_index_range, value must between 1 and 256"))
	}
	if config.OracleQuorum < 3 {
		return ValidFail(errors.New("invalid json field surety.oracle_quorum, at least 3 independent oracles must agree"))
	}

	if result := parseDuration("surety.prune_interval", config.PruneInterval, &config.PruneDuration); result.IsFail() {
		return result
	}
	if result := parseDuration("surety.prune_retention", config.PruneRetention, &config.RetentionDuration); result.IsFail() {
		return result
	}
	return ValidPass()
}
