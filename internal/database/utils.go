// Package database
package database

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"time"
)

func withTimeout(db *gorm.DB, queryTimeout time.Duration) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	return db.WithContext(ctx), cancel
}

func notFoundAs(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

func page(db *gorm.DB, page, pageSize int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	return db.Offset((page - 1) * pageSize).Limit(pageSize)
}
