package database

import (
	. "github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type EventOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewEventOperation(db *gorm.DB, queryTimeout time.Duration) *EventOperation {
	return &EventOperation{db: db, queryTimeout: queryTimeout}
}

func (eventOperation *EventOperation) SaveEvents(events []*Event) error {
	if len(events) == 0 {
		return nil
	}
	db, cancel := withTimeout(eventOperation.db, eventOperation.queryTimeout)
	defer cancel()
	return db.Create(&events).Error
}

func (eventOperation *EventOperation) GetEventsAfter(after uint, limit int) (events []*Event, err error) {
	events = make([]*Event, 0, limit)
	db, cancel := withTimeout(eventOperation.db, eventOperation.queryTimeout)
	defer cancel()
	err = db.Where("id > ?", after).Order("id").Limit(limit).Find(&events).Error
	return
}
