// Package operation
package operation

import "errors"

var (
	// ErrAirlineNotFound the airline has never been proposed
	ErrAirlineNotFound = errors.New("airline does not exist")
)

// AirlineOperationInterface airline registry operation interface
type AirlineOperationInterface interface {
	// GetAirline returns the airline record, err is ErrAirlineNotFound when none exists
	GetAirline(identity string) (airline *Airline, err error)
	// GetAirlines returns a page of airlines ordered by id
	GetAirlines(page, pageSize int) (airlines []*Airline, total int64, err error)
	// SaveAirline creates or updates the airline record
	SaveAirline(airline *Airline) (err error)
	// CountRegisteredAirlines returns the number of airlines that passed registration
	CountRegisteredAirlines() (total int64, err error)
	// AddAirlineVote records voter's vote for candidate, added is false when the vote already existed
	AddAirlineVote(candidate, voter string) (added bool, err error)
	// CountAirlineVotes returns the number of distinct voters for candidate
	CountAirlineVotes(candidate string) (total int64, err error)
	// GetAirlineVotes returns all votes cast for candidate
	GetAirlineVotes(candidate string) (votes []*AirlineVote, err error)
}
