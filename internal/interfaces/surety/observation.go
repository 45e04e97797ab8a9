// Package surety
package surety

import "time"

type ObservationKind string

const (
	VoteRecorded           ObservationKind = "vote_recorded"
	AirlineRegistered      ObservationKind = "airline_registered"
	AirlineFunded          ObservationKind = "airline_funded"
	FlightRegistered       ObservationKind = "flight_registered"
	OracleRequested        ObservationKind = "oracle_request"
	OracleReported         ObservationKind = "oracle_report"
	FlightStatusFinalized  ObservationKind = "flight_status_finalized"
	InsurancePurchased     ObservationKind = "insurance_purchased"
	InsurancePaid          ObservationKind = "insurance_paid"
	OperatingStatusChanged ObservationKind = "operating_status_changed"
)

// Observation is the externally visible record of a committed state change.
// Only the fields relevant to Kind are populated.
type Observation struct {
	ID            uint            `json:"id"`
	Kind          ObservationKind `json:"kind"`
	At            time.Time       `json:"at"`
	Actor         Identity        `json:"actor,omitempty"`
	Airline       Identity        `json:"airline,omitempty"`
	Designator    string          `json:"designator,omitempty"`
	DepartureTime int64           `json:"departure_time,omitempty"`
	Index         int             `json:"index"`
	Status        StatusCode      `json:"status"`
	Votes         int             `json:"votes,omitempty"`
	Amount        Amount          `json:"amount,omitempty"`
	Ledger        Ledger          `json:"ledger,omitempty"`
	Enabled       bool            `json:"enabled,omitempty"`
}

func (o *Observation) FlightKey() FlightKey {
	return FlightKey{Airline: o.Airline, Designator: o.Designator, DepartureTime: o.DepartureTime}
}

func (o *Observation) withFlight(key FlightKey) *Observation {
	o.Airline = key.Airline
	o.Designator = key.Designator
	o.DepartureTime = key.DepartureTime
	return o
}

func NewVoteRecorded(voter, candidate Identity, votes int) *Observation {
	return &Observation{Kind: VoteRecorded, Actor: voter, Airline: candidate, Votes: votes}
}

func NewAirlineRegistered(by, airline Identity, votes int) *Observation {
	return &Observation{Kind: AirlineRegistered, Actor: by, Airline: airline, Votes: votes}
}

func NewAirlineFunded(airline Identity, amount Amount) *Observation {
	return &Observation{Kind: AirlineFunded, Actor: airline, Airline: airline, Amount: amount}
}

func NewFlightRegistered(key FlightKey) *Observation {
	return (&Observation{Kind: FlightRegistered, Actor: key.Airline}).withFlight(key)
}

func NewOracleRequested(by Identity, index int, key FlightKey) *Observation {
	return (&Observation{Kind: OracleRequested, Actor: by, Index: index}).withFlight(key)
}

func NewOracleReported(oracle Identity, index int, key FlightKey, status StatusCode, votes int) *Observation {
	return (&Observation{Kind: OracleReported, Actor: oracle, Index: index, Status: status, Votes: votes}).withFlight(key)
}

func NewFlightStatusFinalized(index int, key FlightKey, status StatusCode, votes int) *Observation {
	return (&Observation{Kind: FlightStatusFinalized, Index: index, Status: status, Votes: votes}).withFlight(key)
}

func NewInsurancePurchased(passenger Identity, key FlightKey, premium Amount) *Observation {
	return (&Observation{Kind: InsurancePurchased, Actor: passenger, Amount: premium}).withFlight(key)
}

func NewInsurancePaid(passenger Identity, key FlightKey, payout Amount) *Observation {
	return (&Observation{Kind: InsurancePaid, Actor: passenger, Amount: payout}).withFlight(key)
}

func NewOperatingStatusChanged(by Identity, ledger Ledger, enabled bool) *Observation {
	return &Observation{Kind: OperatingStatusChanged, Actor: by, Ledger: ledger, Enabled: enabled}
}
