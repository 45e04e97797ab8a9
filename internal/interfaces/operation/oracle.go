// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrOracleNotFound the identity is not a registered oracle
	ErrOracleNotFound = errors.New("oracle does not exist")
	// ErrOracleExists the identity is already a registered oracle
	ErrOracleExists = errors.New("oracle already registered")
	// ErrRequestNotFound no request is open for the given index and flight
	ErrRequestNotFound = errors.New("oracle request does not exist")
	// ErrRequestExists a request for the same index and flight already exists
	ErrRequestExists = errors.New("oracle request already exists")
)

// OracleOperationInterface oracle consensus operation interface
type OracleOperationInterface interface {
	// GetOracle returns the oracle record, err is ErrOracleNotFound when none exists
	GetOracle(identity string) (oracle *Oracle, err error)
	// AddOracle writes a new oracle, returns ErrOracleExists when the identity is taken
	AddOracle(oracle *Oracle) (err error)
	// CountOracles returns the number of registered oracles
	CountOracles() (total int64, err error)
	// GetOracleRequest returns the request keyed by index and flight
	GetOracleRequest(index int, airline, designator string, departureTime int64) (request *OracleRequest, err error)
	// GetRequestedIndexes returns every index already requested for a flight
	GetRequestedIndexes(airline, designator string, departureTime int64) (indexes []int, err error)
	// AddOracleRequest writes a new request, returns ErrRequestExists when the key is taken
	AddOracleRequest(request *OracleRequest) (err error)
	// AddOracleResponse records oracle's report, added is false when the same report already existed
	AddOracleResponse(request *OracleRequest, oracle string, status int) (added bool, err error)
	// CountOracleResponses returns the number of distinct oracles that reported status for the request
	CountOracleResponses(request *OracleRequest, status int) (total int64, err error)
	// FinalizeOracleRequest closes the request with its final status
	FinalizeOracleRequest(request *OracleRequest, status int, finalizedAt time.Time) (err error)
	// GetFinalizedRequestsBefore returns at most limit finalized requests older than before with their responses
	GetFinalizedRequestsBefore(before time.Time, limit int) (requests []*OracleRequest, err error)
	// DeleteOracleRequests removes the requests and their responses
	DeleteOracleRequests(requests []*OracleRequest) (err error)
}
