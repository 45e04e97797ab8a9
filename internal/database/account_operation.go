package database

import (
	"errors"
	. "github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"time"
)

type AccountOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
	bcryptCost   int
}

func NewAccountOperation(db *gorm.DB, queryTimeout time.Duration, bcryptCost int) *AccountOperation {
	return &AccountOperation{db: db, queryTimeout: queryTimeout, bcryptCost: bcryptCost}
}

func (accountOperation *AccountOperation) GetAccount(identity string) (account *Account, err error) {
	account = &Account{}
	db, cancel := withTimeout(accountOperation.db, accountOperation.queryTimeout)
	defer cancel()
	err = db.Where("identity = ?", identity).First(account).Error
	return account, notFoundAs(err, ErrAccountNotFound)
}

func (accountOperation *AccountOperation) NewAccount(identity string, password string, permission Permission) (*Account, error) {
	encodePassword, err := bcrypt.GenerateFromPassword([]byte(password), accountOperation.bcryptCost)
	if err != nil {
		return nil, ErrPasswordEncode
	}
	return &Account{
		Identity:   identity,
		Password:   string(encodePassword),
		Permission: int64(permission),
	}, nil
}

func (accountOperation *AccountOperation) AddAccount(account *Account) error {
	return accountOperation.db.Transaction(func(tx *gorm.DB) error {
		db, cancel := withTimeout(tx, accountOperation.queryTimeout)
		defer cancel()
		var total int64
		if err := db.Model(&Account{}).Where("identity = ?", account.Identity).Count(&total).Error; err != nil {
			return err
		}
		if total > 0 {
			return ErrAccountExists
		}
		return db.Create(account).Error
	})
}

func (accountOperation *AccountOperation) EnsureAccount(identity string, password string, permission Permission) (*Account, error) {
	account, err := accountOperation.GetAccount(identity)
	if errors.Is(err, ErrAccountNotFound) {
		if account, err = accountOperation.NewAccount(identity, password, permission); err != nil {
			return nil, err
		}
		return account, accountOperation.AddAccount(account)
	}
	if err != nil {
		return nil, err
	}
	current := Permission(account.Permission)
	if current&permission == permission {
		return account, nil
	}
	current.Grant(permission)
	return account, accountOperation.UpdateAccountPermission(account, current)
}

func (accountOperation *AccountOperation) UpdateAccountPermission(account *Account, permission Permission) error {
	account.Permission = int64(permission)
	db, cancel := withTimeout(accountOperation.db, accountOperation.queryTimeout)
	defer cancel()
	return db.Model(account).Update("permission", int64(permission)).Error
}

func (accountOperation *AccountOperation) VerifyAccountPassword(account *Account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) == nil
}
