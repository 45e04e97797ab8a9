package surety

import (
	"errors"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
)

type ResponseResult struct {
	// Votes is the number of distinct oracles that reported the submitted status
	Votes       int        `json:"votes"`
	Finalized   bool       `json:"finalized"`
	FinalStatus StatusCode `json:"final_status"`
}

// RegisterOracle assigns caller three indexes drawn independently over the index range.
// Duplicates inside one triple are kept as drawn.
func (core *Core) RegisterOracle(caller Identity, fee Amount) (indexes [3]int, err error) {
	if caller.IsEmpty() {
		return indexes, Errorf(ErrInvalidArgument, "oracle identity must not be empty")
	}
	if int64(fee) < core.config.OracleFeeValue {
		return indexes, Errorf(ErrInsufficientValue, "registration fee must be at least %s, got %s",
			Amount(core.config.OracleFeeValue), fee)
	}
	err = core.mutate(CoreLedger, func(tx *txContext) error {
		for i := range indexes {
			indexes[i] = core.indexSource.Intn(core.config.OracleIndexRange)
		}
		oracle := &operation.Oracle{
			Identity: caller.String(),
			Index0:   indexes[0],
			Index1:   indexes[1],
			Index2:   indexes[2],
			Fee:      int64(fee),
		}
		if err := tx.ops.OracleOperation().AddOracle(oracle); err != nil {
			if errors.Is(err, operation.ErrOracleExists) {
				return Errorf(ErrDuplicate, "oracle %s is already registered", caller)
			}
			return err
		}
		if fee > 0 {
			if err := tx.ops.TreasuryOperation().Deposit(caller.String(), int64(fee), "oracle registration"); err != nil {
				return err
			}
		}
		core.logger.DebugF("Oracle %s registered with indexes %v", caller, indexes)
		return nil
	})
	return
}

// OracleIndexes returns the indexes assigned to a registered oracle
func (core *Core) OracleIndexes(identity Identity) ([3]int, error) {
	oracle, err := core.operations.OracleOperation().GetOracle(identity.String())
	if errors.Is(err, operation.ErrOracleNotFound) {
		return [3]int{}, Errorf(ErrNotFound, "oracle %s", identity)
	}
	if err != nil {
		return [3]int{}, err
	}
	return oracle.Indexes(), nil
}

// RequestStatus opens a request for a fresh index of the flight and announces it to the oracles
func (core *Core) RequestStatus(caller Identity, key FlightKey) (index int, err error) {
	err = core.mutate(CoreLedger, func(tx *txContext) error {
		trusted, err := isTrustedTrigger(tx, core.administrator, caller)
		if err != nil {
			return err
		}
		if !trusted {
			return Errorf(ErrUnauthorized, "%s may not request flight status", caller)
		}
		if _, err := getFlight(tx.ops, key); err != nil {
			return err
		}

		used, err := tx.ops.OracleOperation().GetRequestedIndexes(key.Airline.String(), key.Designator, key.DepartureTime)
		if err != nil {
			return err
		}
		available := freeIndexes(core.config.OracleIndexRange, used)
		if len(available) == 0 {
			return Errorf(ErrDuplicate, "every index has already been requested for flight %s", key)
		}
		index = available[core.indexSource.Intn(len(available))]

		request := &operation.OracleRequest{
			RequestedIndex: index,
			Airline:        key.Airline.String(),
			Designator:     key.Designator,
			DepartureTime:  key.DepartureTime,
			Requester:      caller.String(),
			RequestedAt:    tx.now,
		}
		if err := tx.ops.OracleOperation().AddOracleRequest(request); err != nil {
			return err
		}
		core.logger.InfoF("Oracle request opened for flight %s on index %d by %s", key, index, caller)
		tx.emit(NewOracleRequested(caller, index, key))
		return nil
	})
	return
}

func freeIndexes(indexRange int, used []int) []int {
	taken := make(map[int]bool, len(used))
	for _, index := range used {
		taken[index] = true
	}
	available := make([]int, 0, indexRange)
	for index := 0; index < indexRange; index++ {
		if !taken[index] {
			available = append(available, index)
		}
	}
	return available
}

// SubmitResponse counts caller's report for the request; the first status to reach quorum
// finalizes the request and the flight. Reports after finalization succeed without effect.
func (core *Core) SubmitResponse(caller Identity, index int, key FlightKey, status StatusCode) (result *ResponseResult, err error) {
	if !status.IsValid() {
		return nil, Errorf(ErrInvalidArgument, "unknown status code %d", int(status))
	}
	err = core.mutate(CoreLedger, func(tx *txContext) error {
		oracle, err := tx.ops.OracleOperation().GetOracle(caller.String())
		if errors.Is(err, operation.ErrOracleNotFound) {
			return Errorf(ErrUnauthorized, "%s is not a registered oracle", caller)
		}
		if err != nil {
			return err
		}
		if !oracle.HoldsIndex(index) {
			return Errorf(ErrUnauthorized, "oracle %s does not hold index %d", caller, index)
		}

		request, err := tx.ops.OracleOperation().GetOracleRequest(index, key.Airline.String(), key.Designator, key.DepartureTime)
		if errors.Is(err, operation.ErrRequestNotFound) {
			return Errorf(ErrNotFound, "no request on index %d for flight %s", index, key)
		}
		if err != nil {
			return err
		}
		if request.IsFinalized {
			result = &ResponseResult{Finalized: true, FinalStatus: StatusCode(request.FinalStatus)}
			return nil
		}

		added, err := tx.ops.OracleOperation().AddOracleResponse(request, caller.String(), int(status))
		if err != nil {
			return err
		}
		votes, err := tx.ops.OracleOperation().CountOracleResponses(request, int(status))
		if err != nil {
			return err
		}
		result = &ResponseResult{Votes: int(votes)}
		if !added {
			return nil
		}
		tx.emit(NewOracleReported(caller, index, key, status, int(votes)))

		if int(votes) < core.config.OracleQuorum {
			return nil
		}
		if err := tx.ops.OracleOperation().FinalizeOracleRequest(request, int(status), tx.now); err != nil {
			return err
		}
		if err := core.onFlightFinalized(tx, key, status); err != nil {
			return err
		}
		result.Finalized = true
		result.FinalStatus = status
		core.logger.InfoF("Flight %s finalized as %s on index %d with %d votes", key, status, index, votes)
		tx.emit(NewFlightStatusFinalized(index, key, status, int(votes)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Request returns the oracle request on index for a flight with its responses
func (core *Core) Request(index int, key FlightKey) (*operation.OracleRequest, error) {
	request, err := core.operations.OracleOperation().GetOracleRequest(index, key.Airline.String(), key.Designator, key.DepartureTime)
	if errors.Is(err, operation.ErrRequestNotFound) {
		return nil, Errorf(ErrNotFound, "no request on index %d for flight %s", index, key)
	}
	return request, err
}
