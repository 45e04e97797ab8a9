package surety

import (
	"fmt"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/utils"
)

type ClaimResult struct {
	Policies []*operation.InsurancePolicy `json:"policies"`
	Paid     Amount                       `json:"paid"`
}

// Payout is the amount paid for a premium once its flight is late
func (core *Core) Payout(premium Amount) Amount {
	return Amount(int64(premium) * core.config.PayoutPercent / 100)
}

// BuyInsurance escrows premium into the pool and records a new policy for caller.
// A passenger may hold several policies on the same flight.
func (core *Core) BuyInsurance(caller Identity, key FlightKey, premium Amount) (*operation.InsurancePolicy, error) {
	if caller.IsEmpty() {
		return nil, Errorf(ErrInvalidArgument, "passenger identity must not be empty")
	}
	var policy *operation.InsurancePolicy
	err := core.mutate(CoreLedger, func(tx *txContext) error {
		flight, err := getFlight(tx.ops, key)
		if err != nil {
			return err
		}
		if int64(premium) > core.config.PremiumCapValue {
			return Errorf(ErrValueTooHigh, "premium %s exceeds cap %s", premium, Amount(core.config.PremiumCapValue))
		}
		if premium <= 0 {
			return Errorf(ErrInsufficientValue, "premium must be positive, got %s", premium)
		}
		if flight.FinalizedAt != nil {
			return fmt.Errorf("%w: %s", ErrFlightClosed, key)
		}

		policy = &operation.InsurancePolicy{
			Passenger:     caller.String(),
			Airline:       flight.Airline,
			Designator:    flight.Designator,
			DepartureTime: flight.DepartureTime,
			Premium:       int64(premium),
		}
		if err := tx.ops.PolicyOperation().AddPolicy(policy); err != nil {
			return err
		}
		if err := tx.ops.TreasuryOperation().Deposit(caller.String(), int64(premium), fmt.Sprintf("premium #%d", policy.ID)); err != nil {
			return err
		}
		core.logger.DebugF("Passenger %s insured flight %s for %s", caller, key, premium)
		tx.emit(NewInsurancePurchased(caller, key, premium))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return policy, nil
}

// onFlightFinalized stores the status of the first finalization, which unlocks claims on the flight
func (core *Core) onFlightFinalized(tx *txContext, key FlightKey, status StatusCode) error {
	flight, err := getFlight(tx.ops, key)
	if err != nil {
		return err
	}
	if flight.FinalizedAt != nil {
		core.logger.DebugF("Flight %s already finalized as %s, keeping it", key, flight.Status())
		return nil
	}
	return tx.ops.FlightOperation().SetFlightStatus(flight, int(status), tx.now)
}

// ClaimInsurance pays every unclaimed policy of caller whose flight finalized late.
// The claimed flag of a policy is set before its payout leaves the pool.
func (core *Core) ClaimInsurance(caller Identity) (*ClaimResult, error) {
	result := &ClaimResult{}
	err := core.mutate(CoreLedger, func(tx *txContext) error {
		policies, err := tx.ops.PolicyOperation().GetPoliciesByPassenger(caller.String())
		if err != nil {
			return err
		}

		statuses := make(map[FlightKey]StatusCode)
		eligible := make([]*operation.InsurancePolicy, 0, len(policies))
		claimedLate := 0
		for _, policy := range policies {
			key := policy.Key()
			status, ok := statuses[key]
			if !ok {
				flight, err := getFlight(tx.ops, key)
				if err != nil {
					return err
				}
				status = flight.Status()
				statuses[key] = status
			}
			if !status.IsLate() {
				continue
			}
			if policy.Claimed {
				claimedLate++
				continue
			}
			eligible = append(eligible, policy)
		}

		if len(eligible) == 0 {
			if claimedLate > 0 {
				return Errorf(ErrAlreadyClaimed, "every eligible policy of %s has been paid", caller)
			}
			return Errorf(ErrNothingToClaim, "%s holds no policy on a late flight", caller)
		}

		total := Amount(utils.SumBy(eligible, func(policy *operation.InsurancePolicy) int64 {
			return int64(core.Payout(Amount(policy.Premium)))
		}))
		reserve, err := tx.ops.TreasuryOperation().GetReserve()
		if err != nil {
			return err
		}
		if reserve < int64(total) {
			return Errorf(ErrInsufficientValue, "pool reserve %s can not cover payout %s", Amount(reserve), total)
		}

		for _, policy := range eligible {
			payout := core.Payout(Amount(policy.Premium))
			if err := tx.ops.PolicyOperation().MarkPolicyClaimed(policy, int64(payout), tx.now); err != nil {
				return err
			}
			if err := tx.ops.TreasuryOperation().Payout(caller.String(), int64(payout), fmt.Sprintf("policy #%d", policy.ID)); err != nil {
				return err
			}
			tx.emit(NewInsurancePaid(caller, policy.Key(), payout))
		}
		result.Policies = eligible
		result.Paid = total
		core.logger.InfoF("Passenger %s claimed %d policies for %s", caller, len(eligible), total)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (core *Core) Policies(passenger Identity) ([]*operation.InsurancePolicy, error) {
	return core.operations.PolicyOperation().GetPoliciesByPassenger(passenger.String())
}

// Reserve is the value held by the pool
func (core *Core) Reserve() (Amount, error) {
	reserve, err := core.operations.TreasuryOperation().GetReserve()
	return Amount(reserve), err
}

// Balance is the total value the pool has paid out to identity
func (core *Core) Balance(identity Identity) (Amount, error) {
	total, err := core.operations.TreasuryOperation().SumTransfers(identity.String(), operation.TransferPayout)
	return Amount(total), err
}

func (core *Core) Transfers(identity Identity, page, pageSize int) ([]*operation.Transfer, int64, error) {
	return core.operations.TreasuryOperation().GetTransfers(identity.String(), page, pageSize)
}
