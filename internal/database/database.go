// Package database
package database

import (
	"context"
	"fmt"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"time"
)

type DBCloseCallback struct {
	logger log.LoggerInterface
	db     *gorm.DB
}

func NewDBCloseCallback(logger log.LoggerInterface, db *gorm.DB) *DBCloseCallback {
	return &DBCloseCallback{logger: logger, db: db}
}

func (dc *DBCloseCallback) Invoke(_ context.Context) error {
	dc.logger.Info("Closing database connection")
	db, err := dc.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

var models = []interface{}{
	&Account{},
	&Airline{},
	&AirlineVote{},
	&Flight{},
	&Oracle{},
	&OracleRequest{},
	&OracleResponse{},
	&InsurancePolicy{},
	&OperationalFlag{},
	&AuthorizedCaller{},
	&PoolReserve{},
	&Transfer{},
	&Event{},
}

func ConnectDatabase(lg log.LoggerInterface, config *c.Config, debug bool) (global.Callable, *DatabaseOperations, error) {
	return Connect(lg, config.Database, config.Server.General.BcryptCost, debug)
}

// Connect opens the configured database, migrates every table and builds the operation set
func Connect(lg log.LoggerInterface, config *c.DatabaseConfig, bcryptCost int, debug bool) (global.Callable, *DatabaseOperations, error) {
	connection := config.GetConnection(lg)
	if connection == nil {
		return nil, nil, fmt.Errorf("unsupported database type %s", config.DBType)
	}

	connectionConfig := gorm.Config{}
	connectionConfig.DefaultTransactionTimeout = 5 * time.Second
	connectionConfig.PrepareStmt = true

	if debug {
		connectionConfig.Logger = logger.Default.LogMode(logger.Error)
	} else {
		connectionConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(connection, &connectionConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while connecting to database: %v", err)
	}

	if err = db.Migrator().AutoMigrate(models...); err != nil {
		return nil, nil, fmt.Errorf("error occured while migrating database: %v", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating database pool: %v", err)
	}

	maxOpenConnections := config.ServerMaxConnections * 4 / 5
	maxIdleConnections := maxOpenConnections / 5
	if config.DBType == c.SQLite || maxOpenConnections < 1 {
		// sqlite serializes writers anyway, one connection avoids SQLITE_BUSY
		maxOpenConnections, maxIdleConnections = 1, 1
	}

	dbPool.SetMaxIdleConns(maxIdleConnections)
	dbPool.SetMaxOpenConns(maxOpenConnections)
	dbPool.SetConnMaxLifetime(config.ConnectIdleDuration)

	if err = dbPool.Ping(); err != nil {
		return nil, nil, fmt.Errorf("error occured while pinging database: %v", err)
	}
	lg.Info("Database initialized and connection established")

	return NewDBCloseCallback(lg, db), newDatabaseOperations(db, config.QueryDuration, bcryptCost), nil
}

func newDatabaseOperations(db *gorm.DB, queryTimeout time.Duration, bcryptCost int) *DatabaseOperations {
	return NewDatabaseOperations(
		NewAccountOperation(db, queryTimeout, bcryptCost),
		NewAirlineOperation(db, queryTimeout),
		NewFlightOperation(db, queryTimeout),
		NewOracleOperation(db, queryTimeout),
		NewPolicyOperation(db, queryTimeout),
		NewTreasuryOperation(db, queryTimeout),
		NewGovernanceOperation(db, queryTimeout),
		NewEventOperation(db, queryTimeout),
		&transactor{db: db, queryTimeout: queryTimeout, bcryptCost: bcryptCost},
	)
}

type transactor struct {
	db           *gorm.DB
	queryTimeout time.Duration
	bcryptCost   int
}

func (t *transactor) Transaction(fc func(ops *DatabaseOperations) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fc(newDatabaseOperations(tx, t.queryTimeout, t.bcryptCost))
	})
}
