package surety

import (
	"errors"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
)

type RegistrationResult struct {
	Registered bool `json:"registered"`
	Votes      int  `json:"votes"`
	Required   int  `json:"required"`
}

// quorum is the number of distinct votes needed once bootstrap is over
func quorum(registered int64) int {
	return int((registered + 1) / 2)
}

func requireFundedAirline(tx *txContext, caller Identity) (*operation.Airline, error) {
	airline, err := tx.ops.AirlineOperation().GetAirline(caller.String())
	if errors.Is(err, operation.ErrAirlineNotFound) {
		return nil, Errorf(ErrUnauthorized, "%s is not an airline", caller)
	}
	if err != nil {
		return nil, err
	}
	if !airline.IsRegistered || !airline.IsFunded {
		return nil, Errorf(ErrUnauthorized, "%s is not a funded airline", caller)
	}
	return airline, nil
}

// RegisterAirline admits candidate directly while the network is bootstrapping and
// counts caller's vote for candidate afterwards.
func (core *Core) RegisterAirline(caller, candidate Identity) (result *RegistrationResult, err error) {
	if candidate.IsEmpty() {
		return nil, Errorf(ErrInvalidArgument, "candidate identity must not be empty")
	}
	err = core.mutate(AirlineLedger, func(tx *txContext) error {
		if _, err := requireFundedAirline(tx, caller); err != nil {
			return err
		}

		airline, err := tx.ops.AirlineOperation().GetAirline(candidate.String())
		if errors.Is(err, operation.ErrAirlineNotFound) {
			airline = &operation.Airline{Identity: candidate.String()}
		} else if err != nil {
			return err
		}
		if airline.IsRegistered {
			return Errorf(ErrDuplicate, "airline %s is already registered", candidate)
		}

		registered, err := tx.ops.AirlineOperation().CountRegisteredAirlines()
		if err != nil {
			return err
		}

		if registered < int64(core.config.BootstrapAirlines) {
			airline.IsRegistered = true
			airline.RegisteredBy = caller.String()
			if err := tx.ops.AirlineOperation().SaveAirline(airline); err != nil {
				return err
			}
			core.logger.InfoF("Airline %s registered by %s without vote (%d registered)", candidate, caller, registered+1)
			tx.emit(NewAirlineRegistered(caller, candidate, 0))
			result = &RegistrationResult{Registered: true}
			return nil
		}

		if airline.ID == 0 {
			if err := tx.ops.AirlineOperation().SaveAirline(airline); err != nil {
				return err
			}
		}
		added, err := tx.ops.AirlineOperation().AddAirlineVote(candidate.String(), caller.String())
		if err != nil {
			return err
		}
		votes, err := tx.ops.AirlineOperation().CountAirlineVotes(candidate.String())
		if err != nil {
			return err
		}
		required := quorum(registered)
		result = &RegistrationResult{Votes: int(votes), Required: required}

		if int(votes) < required {
			if added {
				core.logger.DebugF("Airline %s voted for %s, %d/%d votes", caller, candidate, votes, required)
				tx.emit(NewVoteRecorded(caller, candidate, int(votes)))
			}
			return nil
		}

		airline.IsRegistered = true
		airline.RegisteredBy = caller.String()
		if err := tx.ops.AirlineOperation().SaveAirline(airline); err != nil {
			return err
		}
		result.Registered = true
		core.logger.InfoF("Airline %s registered with %d/%d votes", candidate, votes, required)
		tx.emit(NewAirlineRegistered(caller, candidate, int(votes)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FundAirline deposits the funding requirement into the pool and lets the airline participate
func (core *Core) FundAirline(caller Identity, amount Amount) error {
	return core.mutate(AirlineLedger, func(tx *txContext) error {
		airline, err := tx.ops.AirlineOperation().GetAirline(caller.String())
		if errors.Is(err, operation.ErrAirlineNotFound) {
			return Errorf(ErrUnauthorized, "%s is not an airline", caller)
		}
		if err != nil {
			return err
		}
		if !airline.IsRegistered {
			return Errorf(ErrUnauthorized, "airline %s is not registered", caller)
		}
		if airline.IsFunded {
			return Errorf(ErrUnauthorized, "airline %s is already funded", caller)
		}
		if int64(amount) != core.config.AirlineFundingValue {
			return Errorf(ErrInsufficientValue, "funding must be exactly %s, got %s",
				Amount(core.config.AirlineFundingValue), amount)
		}

		airline.IsFunded = true
		if err := tx.ops.AirlineOperation().SaveAirline(airline); err != nil {
			return err
		}
		if err := tx.ops.TreasuryOperation().Deposit(caller.String(), int64(amount), "airline funding"); err != nil {
			return err
		}
		core.logger.InfoF("Airline %s funded with %s", caller, amount)
		tx.emit(NewAirlineFunded(caller, amount))
		return nil
	})
}

func (core *Core) Airline(identity Identity) (*operation.Airline, error) {
	airline, err := core.operations.AirlineOperation().GetAirline(identity.String())
	if errors.Is(err, operation.ErrAirlineNotFound) {
		return nil, Errorf(ErrNotFound, "airline %s", identity)
	}
	return airline, err
}

func (core *Core) Airlines(page, pageSize int) ([]*operation.Airline, int64, error) {
	return core.operations.AirlineOperation().GetAirlines(page, pageSize)
}

func (core *Core) IsAirline(identity Identity) (bool, error) {
	airline, err := core.Airline(identity)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return airline.IsRegistered, nil
}

func (core *Core) IsFunded(identity Identity) (bool, error) {
	airline, err := core.Airline(identity)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return airline.IsFunded, nil
}

// Votes returns the identities that voted for candidate in vote order
func (core *Core) Votes(candidate Identity) ([]Identity, error) {
	votes, err := core.operations.AirlineOperation().GetAirlineVotes(candidate.String())
	if err != nil {
		return nil, err
	}
	voters := make([]Identity, 0, len(votes))
	for _, vote := range votes {
		voters = append(voters, Identity(vote.Voter))
	}
	return voters, nil
}
