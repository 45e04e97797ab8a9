package surety

import (
	"errors"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
)

// RegisterFlight registers a flight owned by caller with status Unknown
func (core *Core) RegisterFlight(caller Identity, designator string, departureTime int64) (*operation.Flight, error) {
	key := NewFlightKey(caller, designator, departureTime)
	if key.Designator == "" {
		return nil, Errorf(ErrInvalidArgument, "flight designator must not be empty")
	}
	flight := &operation.Flight{
		Airline:       key.Airline.String(),
		Designator:    key.Designator,
		DepartureTime: key.DepartureTime,
		StatusCode:    int(StatusUnknown),
		IsRegistered:  true,
	}
	err := core.mutate(AirlineLedger, func(tx *txContext) error {
		if _, err := requireFundedAirline(tx, caller); err != nil {
			return err
		}
		if err := tx.ops.FlightOperation().AddFlight(flight); err != nil {
			if errors.Is(err, operation.ErrFlightExists) {
				return Errorf(ErrDuplicate, "flight %s", key)
			}
			return err
		}
		core.logger.InfoF("Flight %s registered", key)
		tx.emit(NewFlightRegistered(key))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return flight, nil
}

func getFlight(ops *operation.DatabaseOperations, key FlightKey) (*operation.Flight, error) {
	flight, err := ops.FlightOperation().GetFlight(key.Airline.String(), key.Designator, key.DepartureTime)
	if errors.Is(err, operation.ErrFlightNotFound) {
		return nil, Errorf(ErrNotFound, "flight %s", key)
	}
	return flight, err
}

// Lookup returns the registered flight with the given key
func (core *Core) Lookup(key FlightKey) (*operation.Flight, error) {
	return getFlight(core.operations, key)
}

func (core *Core) Flights(airline Identity, page, pageSize int) ([]*operation.Flight, int64, error) {
	return core.operations.FlightOperation().GetFlightsByAirline(airline.String(), page, pageSize)
}
