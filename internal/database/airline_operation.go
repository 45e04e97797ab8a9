package database

import (
	. "github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type AirlineOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAirlineOperation(db *gorm.DB, queryTimeout time.Duration) *AirlineOperation {
	return &AirlineOperation{db: db, queryTimeout: queryTimeout}
}

func (airlineOperation *AirlineOperation) GetAirline(identity string) (airline *Airline, err error) {
	airline = &Airline{}
	db, cancel := withTimeout(airlineOperation.db, airlineOperation.queryTimeout)
	defer cancel()
	err = db.Where("identity = ?", identity).First(airline).Error
	return airline, notFoundAs(err, ErrAirlineNotFound)
}

func (airlineOperation *AirlineOperation) GetAirlines(pageNumber, pageSize int) (airlines []*Airline, total int64, err error) {
	airlines = make([]*Airline, 0, pageSize)
	db, cancel := withTimeout(airlineOperation.db, airlineOperation.queryTimeout)
	defer cancel()
	if err = db.Model(&Airline{}).Count(&total).Error; err != nil {
		return
	}
	err = page(db.Order("id"), pageNumber, pageSize).Find(&airlines).Error
	return
}

func (airlineOperation *AirlineOperation) SaveAirline(airline *Airline) error {
	db, cancel := withTimeout(airlineOperation.db, airlineOperation.queryTimeout)
	defer cancel()
	return db.Save(airline).Error
}

func (airlineOperation *AirlineOperation) CountRegisteredAirlines() (total int64, err error) {
	db, cancel := withTimeout(airlineOperation.db, airlineOperation.queryTimeout)
	defer cancel()
	err = db.Model(&Airline{}).Where("is_registered = ?", true).Count(&total).Error
	return
}

func (airlineOperation *AirlineOperation) AddAirlineVote(candidate, voter string) (bool, error) {
	db, cancel := withTimeout(airlineOperation.db, airlineOperation.queryTimeout)
	defer cancel()
	result := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&AirlineVote{Candidate: candidate, Voter: voter})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (airlineOperation *AirlineOperation) CountAirlineVotes(candidate string) (total int64, err error) {
	db, cancel := withTimeout(airlineOperation.db, airlineOperation.queryTimeout)
	defer cancel()
	err = db.Model(&AirlineVote{}).Where("candidate = ?", candidate).Count(&total).Error
	return
}

func (airlineOperation *AirlineOperation) GetAirlineVotes(candidate string) (votes []*AirlineVote, err error) {
	db, cancel := withTimeout(airlineOperation.db, airlineOperation.queryTimeout)
	defer cancel()
	err = db.Where("candidate = ?", candidate).Order("id").Find(&votes).Error
	return
}
