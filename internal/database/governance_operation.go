package database

import (
	"errors"
	. "github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type GovernanceOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewGovernanceOperation(db *gorm.DB, queryTimeout time.Duration) *GovernanceOperation {
	return &GovernanceOperation{db: db, queryTimeout: queryTimeout}
}

func (governanceOperation *GovernanceOperation) IsOperational(ledger string) (bool, error) {
	db, cancel := withTimeout(governanceOperation.db, governanceOperation.queryTimeout)
	defer cancel()
	flag := &OperationalFlag{}
	err := db.Where("ledger = ?", ledger).First(flag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return flag.Enabled, nil
}

func (governanceOperation *GovernanceOperation) SetOperational(ledger string, enabled bool) error {
	db, cancel := withTimeout(governanceOperation.db, governanceOperation.queryTimeout)
	defer cancel()
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ledger"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled", "updated_at"}),
	}).Create(&OperationalFlag{Ledger: ledger, Enabled: enabled}).Error
}

func (governanceOperation *GovernanceOperation) GetOperationalFlags() (flags []*OperationalFlag, err error) {
	db, cancel := withTimeout(governanceOperation.db, governanceOperation.queryTimeout)
	defer cancel()
	err = db.Order("ledger").Find(&flags).Error
	return
}

func (governanceOperation *GovernanceOperation) IsAuthorizedCaller(identity string) (bool, error) {
	db, cancel := withTimeout(governanceOperation.db, governanceOperation.queryTimeout)
	defer cancel()
	var total int64
	err := db.Model(&AuthorizedCaller{}).Where("identity = ?", identity).Count(&total).Error
	return total > 0, err
}

func (governanceOperation *GovernanceOperation) AddAuthorizedCaller(identity string) error {
	db, cancel := withTimeout(governanceOperation.db, governanceOperation.queryTimeout)
	defer cancel()
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&AuthorizedCaller{Identity: identity}).Error
}

func (governanceOperation *GovernanceOperation) RemoveAuthorizedCaller(identity string) error {
	db, cancel := withTimeout(governanceOperation.db, governanceOperation.queryTimeout)
	defer cancel()
	return db.Where("identity = ?", identity).Delete(&AuthorizedCaller{}).Error
}
