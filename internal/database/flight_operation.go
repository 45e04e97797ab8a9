package database

import (
	. "github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type FlightOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewFlightOperation(db *gorm.DB, queryTimeout time.Duration) *FlightOperation {
	return &FlightOperation{db: db, queryTimeout: queryTimeout}
}

func (flightOperation *FlightOperation) GetFlight(airline, designator string, departureTime int64) (flight *Flight, err error) {
	flight = &Flight{}
	db, cancel := withTimeout(flightOperation.db, flightOperation.queryTimeout)
	defer cancel()
	err = db.Where("airline = ? AND designator = ? AND departure_time = ?", airline, designator, departureTime).
		First(flight).Error
	return flight, notFoundAs(err, ErrFlightNotFound)
}

func (flightOperation *FlightOperation) GetFlightsByAirline(airline string, pageNumber, pageSize int) (flights []*Flight, total int64, err error) {
	flights = make([]*Flight, 0, pageSize)
	db, cancel := withTimeout(flightOperation.db, flightOperation.queryTimeout)
	defer cancel()
	query := db.Model(&Flight{}).Where("airline = ?", airline)
	if err = query.Count(&total).Error; err != nil {
		return
	}
	err = page(db.Where("airline = ?", airline).Order("departure_time"), pageNumber, pageSize).Find(&flights).Error
	return
}

func (flightOperation *FlightOperation) AddFlight(flight *Flight) error {
	db, cancel := withTimeout(flightOperation.db, flightOperation.queryTimeout)
	defer cancel()
	var total int64
	if err := db.Model(&Flight{}).
		Where("airline = ? AND designator = ? AND departure_time = ?", flight.Airline, flight.Designator, flight.DepartureTime).
		Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return ErrFlightExists
	}
	return db.Create(flight).Error
}

func (flightOperation *FlightOperation) SetFlightStatus(flight *Flight, status int, finalizedAt time.Time) error {
	db, cancel := withTimeout(flightOperation.db, flightOperation.queryTimeout)
	defer cancel()
	if err := db.Model(flight).Updates(map[string]interface{}{
		"status_code":  status,
		"finalized_at": finalizedAt,
	}).Error; err != nil {
		return err
	}
	flight.StatusCode = status
	flight.FinalizedAt = &finalizedAt
	return nil
}
