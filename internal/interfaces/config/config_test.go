package config_test

import (
	"testing"
	"time"

	"github.com/half-nothing/simple-surety/internal/base"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		fail     bool
	}{
		{"1", 1_000_000_000, false},
		{"0.5", 500_000_000, false},
		{" 10 ", 10_000_000_000, false},
		{"0.000000001", 1, false},
		{"-2", -2_000_000_000, false},
		{"0.0000000001", 0, true},
		{"ten", 0, true},
		{"", 0, true},
		{"99999999999", 0, true},
	}
	for _, test := range tests {
		value, err := c.ParseValue(test.input)
		if test.fail {
			assert.Error(t, err, test.input)
			continue
		}
		require.NoError(t, err, test.input)
		assert.Equal(t, test.expected, value, test.input)
	}
}

func validConfig(t *testing.T) *c.Config {
	t.Helper()
	config := c.DefaultConfig()
	config.Archive.LocalStorePath = t.TempDir()
	return config
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := validConfig(t)
	result := config.CheckValid(base.NewLogger())
	require.False(t, result.IsFail(), "%v", result.Error())

	assert.Equal(t, c.SQLite, config.Database.DBType)
	assert.Equal(t, 5*time.Second, config.Database.QueryDuration)
	assert.Equal(t, "0.0.0.0:6810", config.Server.HttpServer.Address)
	assert.Equal(t, int64(10_000_000_000), config.Surety.AirlineFundingValue)
	assert.Equal(t, int64(1_000_000_000), config.Surety.PremiumCapValue)
	assert.Equal(t, int64(1_000_000_000), config.Surety.OracleFeeValue)
	assert.Equal(t, 10*time.Minute, config.Surety.PruneDuration)
	assert.Equal(t, 15*time.Minute, config.Server.HttpServer.JWT.ExpiresDuration)
	assert.Len(t, config.Surety.AdministratorPassword, 16)
	assert.NotEqual(t, config.Surety.AdministratorPassword, c.DefaultConfig().Surety.AdministratorPassword)
}

func TestFirstAirlineWithoutPassword(t *testing.T) {
	config := validConfig(t)
	config.Surety.FirstAirlinePassword = ""
	assert.False(t, config.CheckValid(base.NewLogger()).IsFail())
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(config *c.Config)
	}{
		{"version", func(config *c.Config) { config.ConfigVersion = "0.0.1" }},
		{"database type", func(config *c.Config) { config.Database.Type = "oracle" }},
		{"administrator is first airline", func(config *c.Config) { config.Surety.FirstAirline = " OWNER " }},
		{"funding", func(config *c.Config) { config.Surety.AirlineFunding = "0" }},
		{"premium cap", func(config *c.Config) { config.Surety.PremiumCap = "a lot" }},
		{"negative fee", func(config *c.Config) { config.Surety.OracleFee = "-1" }},
		{"index range", func(config *c.Config) { config.Surety.OracleIndexRange = 0 }},
		{"quorum", func(config *c.Config) { config.Surety.OracleQuorum = 0 }},
		{"quorum below three", func(config *c.Config) { config.Surety.OracleQuorum = 2 }},
		{"administrator password", func(config *c.Config) { config.Surety.AdministratorPassword = "" }},
		{"bcrypt cost", func(config *c.Config) { config.Server.General.BcryptCost = 3 }},
		{"port", func(config *c.Config) { config.Server.HttpServer.Port = 80 }},
		{"relay status", func(config *c.Config) { config.Server.OracleRelay.StatusCode = 25 }},
		{"archive store", func(config *c.Config) { config.Archive.StoreType = c.ALiYunOssStore }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := validConfig(t)
			test.modify(config)
			assert.True(t, config.CheckValid(base.NewLogger()).IsFail())
		})
	}
}

func TestSSLFallsBackWithoutCertificates(t *testing.T) {
	config := validConfig(t)
	config.Server.HttpServer.SSL.Enable = true
	config.Server.HttpServer.SSL.ForceSSL = true
	require.False(t, config.CheckValid(base.NewLogger()).IsFail())
	assert.False(t, config.Server.HttpServer.SSL.Enable)
	assert.False(t, config.Server.HttpServer.SSL.ForceSSL)
}
