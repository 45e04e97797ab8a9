package surety

import . "github.com/half-nothing/simple-surety/internal/interfaces/surety"

func requireOperational(tx *txContext, ledger Ledger) error {
	enabled, err := tx.ops.GovernanceOperation().IsOperational(string(ledger))
	if err != nil {
		return err
	}
	if !enabled {
		return Errorf(ErrNotOperational, "%s ledger is paused", ledger)
	}
	return nil
}

func (core *Core) requireAdministrator(caller Identity) error {
	if caller != core.administrator {
		return Errorf(ErrUnauthorized, "%s is not the administrator", caller)
	}
	return nil
}

// SetOperatingStatus pauses or resumes every ledger at once
func (core *Core) SetOperatingStatus(caller Identity, enabled bool) error {
	return core.setLedgers(caller, Ledgers, enabled)
}

// SetLedgerStatus pauses or resumes a single ledger
func (core *Core) SetLedgerStatus(caller Identity, ledger Ledger, enabled bool) error {
	if !ledger.IsValid() {
		return Errorf(ErrInvalidArgument, "unknown ledger %q", ledger)
	}
	return core.setLedgers(caller, []Ledger{ledger}, enabled)
}

func (core *Core) setLedgers(caller Identity, ledgers []Ledger, enabled bool) error {
	if err := core.requireAdministrator(caller); err != nil {
		return err
	}
	return core.mutate("", func(tx *txContext) error {
		for _, ledger := range ledgers {
			current, err := tx.ops.GovernanceOperation().IsOperational(string(ledger))
			if err != nil {
				return err
			}
			if current == enabled {
				continue
			}
			if err := tx.ops.GovernanceOperation().SetOperational(string(ledger), enabled); err != nil {
				return err
			}
			core.logger.InfoF("Ledger %s operational status changed to %t by %s", ledger, enabled, caller)
			tx.emit(NewOperatingStatusChanged(caller, ledger, enabled))
		}
		return nil
	})
}

func (core *Core) IsOperational(ledger Ledger) (bool, error) {
	return core.operations.GovernanceOperation().IsOperational(string(ledger))
}

// OperatingStatus reports the flag of every ledger
func (core *Core) OperatingStatus() (map[Ledger]bool, error) {
	status := make(map[Ledger]bool, len(Ledgers))
	for _, ledger := range Ledgers {
		enabled, err := core.IsOperational(ledger)
		if err != nil {
			return nil, err
		}
		status[ledger] = enabled
	}
	return status, nil
}

// AuthorizeCaller lets identity trigger oracle requests
func (core *Core) AuthorizeCaller(caller, identity Identity) error {
	if err := core.requireAdministrator(caller); err != nil {
		return err
	}
	if identity.IsEmpty() {
		return Errorf(ErrInvalidArgument, "caller identity must not be empty")
	}
	return core.mutate("", func(tx *txContext) error {
		return tx.ops.GovernanceOperation().AddAuthorizedCaller(identity.String())
	})
}

func (core *Core) DeauthorizeCaller(caller, identity Identity) error {
	if err := core.requireAdministrator(caller); err != nil {
		return err
	}
	return core.mutate("", func(tx *txContext) error {
		return tx.ops.GovernanceOperation().RemoveAuthorizedCaller(identity.String())
	})
}

func (core *Core) IsAuthorizedCaller(identity Identity) (bool, error) {
	if identity == core.administrator {
		return true, nil
	}
	return core.operations.GovernanceOperation().IsAuthorizedCaller(identity.String())
}

func isTrustedTrigger(tx *txContext, administrator, caller Identity) (bool, error) {
	if caller == administrator {
		return true, nil
	}
	return tx.ops.GovernanceOperation().IsAuthorizedCaller(caller.String())
}
