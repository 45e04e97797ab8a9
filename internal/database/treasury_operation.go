package database

import (
	. "github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

const reserveRowId = 1

type TreasuryOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewTreasuryOperation(db *gorm.DB, queryTimeout time.Duration) *TreasuryOperation {
	return &TreasuryOperation{db: db, queryTimeout: queryTimeout}
}

func (treasuryOperation *TreasuryOperation) GetReserve() (int64, error) {
	db, cancel := withTimeout(treasuryOperation.db, treasuryOperation.queryTimeout)
	defer cancel()
	reserve := &PoolReserve{}
	if err := db.FirstOrCreate(reserve, PoolReserve{ID: reserveRowId}).Error; err != nil {
		return 0, err
	}
	return reserve.Reserve, nil
}

func (treasuryOperation *TreasuryOperation) Deposit(identity string, amount int64, reference string) error {
	db, cancel := withTimeout(treasuryOperation.db, treasuryOperation.queryTimeout)
	defer cancel()
	reserve := &PoolReserve{}
	if err := db.FirstOrCreate(reserve, PoolReserve{ID: reserveRowId}).Error; err != nil {
		return err
	}
	if err := db.Model(reserve).Update("reserve", gorm.Expr("reserve + ?", amount)).Error; err != nil {
		return err
	}
	return db.Create(&Transfer{
		Kind:      string(TransferDeposit),
		Identity:  identity,
		Amount:    amount,
		Reference: reference,
	}).Error
}

func (treasuryOperation *TreasuryOperation) Payout(identity string, amount int64, reference string) error {
	db, cancel := withTimeout(treasuryOperation.db, treasuryOperation.queryTimeout)
	defer cancel()
	result := db.Model(&PoolReserve{}).
		Where("id = ? AND reserve >= ?", reserveRowId, amount).
		Update("reserve", gorm.Expr("reserve - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReserveInsufficient
	}
	return db.Create(&Transfer{
		Kind:      string(TransferPayout),
		Identity:  identity,
		Amount:    amount,
		Reference: reference,
	}).Error
}

func (treasuryOperation *TreasuryOperation) GetTransfers(identity string, pageNumber, pageSize int) (transfers []*Transfer, total int64, err error) {
	transfers = make([]*Transfer, 0, pageSize)
	db, cancel := withTimeout(treasuryOperation.db, treasuryOperation.queryTimeout)
	defer cancel()
	if err = db.Model(&Transfer{}).Where("identity = ?", identity).Count(&total).Error; err != nil {
		return
	}
	err = page(db.Where("identity = ?", identity).Order("id DESC"), pageNumber, pageSize).Find(&transfers).Error
	return
}

func (treasuryOperation *TreasuryOperation) SumTransfers(identity string, kind TransferKind) (total int64, err error) {
	db, cancel := withTimeout(treasuryOperation.db, treasuryOperation.queryTimeout)
	defer cancel()
	err = db.Model(&Transfer{}).
		Where("identity = ? AND kind = ?", identity, string(kind)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return
}
