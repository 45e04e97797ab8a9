package main

import (
	"flag"
	"fmt"
	"github.com/half-nothing/simple-surety/internal/archive"
	"github.com/half-nothing/simple-surety/internal/base"
	"github.com/half-nothing/simple-surety/internal/database"
	"github.com/half-nothing/simple-surety/internal/http_server"
	"github.com/half-nothing/simple-surety/internal/interfaces"
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"github.com/half-nothing/simple-surety/internal/notify"
	"github.com/half-nothing/simple-surety/internal/oracle_relay"
	"github.com/half-nothing/simple-surety/internal/surety"
	"github.com/jonboulle/clockwork"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	flag.Parse()

	defer recoverFromError()

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.InfoF("Application initializing, version %s", global.AppVersion)

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger)
	config := configManager.Config()

	shutdownCallback, databaseOperation, err := database.ConnectDatabase(logger, config, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing operation, details: %v", err)
		return
	}

	cleaner.Add(shutdownCallback)

	accountOperation := databaseOperation.AccountOperation()
	if _, err := accountOperation.EnsureAccount(
		config.Surety.Administrator, config.Surety.AdministratorPassword, operation.AdminEntry|operation.TriggerEntry,
	); err != nil {
		logger.FatalF("Error occurred while creating administrator account, details: %v", err)
		return
	}
	if config.Surety.FirstAirlinePassword != "" {
		if _, err := accountOperation.EnsureAccount(config.Surety.FirstAirline, config.Surety.FirstAirlinePassword, 0); err != nil {
			logger.FatalF("Error occurred while creating first airline account, details: %v", err)
			return
		}
	}

	bus := surety.NewEventBus(logger)
	cleaner.Add(bus)

	core, err := surety.NewCore(logger, config.Surety, databaseOperation, bus)
	if err != nil {
		logger.FatalF("Error occurred while initializing surety core, details: %v", err)
		return
	}

	var relay *oracle_relay.Relay
	if config.Server.OracleRelay.Enabled && !*global.SkipRelay {
		relay = oracle_relay.NewRelay(logger, config.Server.OracleRelay, config.Surety, core)
		if err := relay.Start(); err != nil {
			logger.ErrorF("Oracle relay could not start, continuing without it: %v", err)
			relay = nil
		} else {
			cleaner.Add(relay)
		}
	}

	var store archive.StoreInterface
	if config.Archive.Enabled {
		if store, err = archive.NewStore(logger, config.Archive); err != nil {
			logger.FatalF("Error occurred while initializing archive store, details: %v", err)
			return
		}
	}
	pruner := archive.NewPruner(logger, config.Surety, core, store, clockwork.NewRealClock())
	pruner.Start()
	cleaner.Add(pruner)

	if config.Email.Enabled {
		notifier := notify.NewEmailNotifier(logger, config.Email, config.Email.EmailServer)
		notifier.Start(bus)
		cleaner.Add(notifier)
	}

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperation, core, relay)

	if config.Server.HttpServer.Enabled {
		http_server.StartHttpServer(applicationContent)
		return
	}

	logger.Info("Http server disabled, waiting for shutdown signal")
	select {}
}
