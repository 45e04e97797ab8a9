// Package interfaces
package interfaces

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"github.com/half-nothing/simple-surety/internal/oracle_relay"
	"github.com/half-nothing/simple-surety/internal/surety"
)

type ApplicationContent struct {
	configManager ConfigManagerInterface
	cleaner       CleanerInterface
	logger        log.LoggerInterface
	operations    *operation.DatabaseOperations
	core          *surety.Core
	relay         *oracle_relay.Relay
}

func NewApplicationContent(
	configManager ConfigManagerInterface,
	cleaner CleanerInterface,
	logger log.LoggerInterface,
	db *operation.DatabaseOperations,
	core *surety.Core,
	relay *oracle_relay.Relay,
) *ApplicationContent {
	return &ApplicationContent{
		configManager: configManager,
		cleaner:       cleaner,
		logger:        logger,
		operations:    db,
		core:          core,
		relay:         relay,
	}
}

func (app *ApplicationContent) ConfigManager() ConfigManagerInterface {
	return app.configManager
}

func (app *ApplicationContent) Cleaner() CleanerInterface { return app.cleaner }

func (app *ApplicationContent) Logger() log.LoggerInterface { return app.logger }

func (app *ApplicationContent) Operations() *operation.DatabaseOperations { return app.operations }

func (app *ApplicationContent) Core() *surety.Core { return app.core }

// Relay is nil when the oracle relay is disabled
func (app *ApplicationContent) Relay() *oracle_relay.Relay { return app.relay }
