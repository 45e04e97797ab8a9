// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrFlightNotFound the flight has not been registered
	ErrFlightNotFound = errors.New("flight does not exist")
	// ErrFlightExists a flight with the same key is already registered
	ErrFlightExists = errors.New("flight already registered")
)

// FlightOperationInterface flight registry operation interface
type FlightOperationInterface interface {
	// GetFlight returns the flight identified by key, err is ErrFlightNotFound when none exists
	GetFlight(airline, designator string, departureTime int64) (flight *Flight, err error)
	// GetFlightsByAirline returns a page of flights owned by airline
	GetFlightsByAirline(airline string, page, pageSize int) (flights []*Flight, total int64, err error)
	// AddFlight writes a new flight, returns ErrFlightExists when the key is taken
	AddFlight(flight *Flight) (err error)
	// SetFlightStatus stores the final status of a flight
	SetFlightStatus(flight *Flight, status int, finalizedAt time.Time) (err error)
}
