// Package surety holds the domain types shared by the insurance core and its callers
package surety

import (
	"fmt"
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"math/big"
	"strings"
)

// Identity names a caller: an airline, a passenger, an oracle or the administrator
type Identity string

func NewIdentity(raw string) Identity {
	return Identity(strings.ToLower(strings.TrimSpace(raw)))
}

func (id Identity) String() string { return string(id) }

func (id Identity) IsEmpty() bool { return id == "" }

// Amount is a quantity of native value in sub-units
type Amount int64

func (a Amount) String() string {
	rat := new(big.Rat).SetFrac64(int64(a), global.SubUnitsPerUnit)
	text := strings.TrimRight(rat.FloatString(9), "0")
	return strings.TrimSuffix(text, ".")
}

// Units returns n whole units as an Amount
func Units(n int64) Amount { return Amount(n * global.SubUnitsPerUnit) }

type StatusCode int

const (
	StatusUnknown       StatusCode = 0
	StatusOnTime        StatusCode = 10
	StatusLateAirline   StatusCode = 20
	StatusLateWeather   StatusCode = 30
	StatusLateTechnical StatusCode = 40
	StatusLateOther     StatusCode = 50
)

var StatusCodes = []StatusCode{StatusUnknown, StatusOnTime, StatusLateAirline, StatusLateWeather, StatusLateTechnical, StatusLateOther}

var statusNames = map[StatusCode]string{
	StatusUnknown:       "unknown",
	StatusOnTime:        "on_time",
	StatusLateAirline:   "late_airline",
	StatusLateWeather:   "late_weather",
	StatusLateTechnical: "late_technical",
	StatusLateOther:     "late_other",
}

func (s StatusCode) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// IsLate reports whether the status makes a policy eligible for payout
func (s StatusCode) IsLate() bool {
	switch s {
	case StatusLateAirline, StatusLateWeather, StatusLateTechnical, StatusLateOther:
		return true
	default:
		return false
	}
}

func (s StatusCode) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// FlightKey uniquely identifies a flight
type FlightKey struct {
	Airline       Identity `json:"airline"`
	Designator    string   `json:"designator"`
	DepartureTime int64    `json:"departure_time"`
}

func NewFlightKey(airline Identity, designator string, departureTime int64) FlightKey {
	return FlightKey{Airline: airline, Designator: strings.ToUpper(strings.TrimSpace(designator)), DepartureTime: departureTime}
}

func (k FlightKey) String() string {
	return fmt.Sprintf("%s/%s@%d", k.Airline, k.Designator, k.DepartureTime)
}

// Ledger names one of the independently pausable sub-ledgers
type Ledger string

const (
	AirlineLedger Ledger = "airline"
	CoreLedger    Ledger = "core"
)

var Ledgers = []Ledger{AirlineLedger, CoreLedger}

func (l Ledger) IsValid() bool { return l == AirlineLedger || l == CoreLedger }
