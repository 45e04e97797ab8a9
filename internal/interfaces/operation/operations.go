// Package operation
package operation

// Transactor runs fc inside one database transaction.
// The operations passed to fc are bound to that transaction; returning an error rolls it back.
type Transactor interface {
	Transaction(fc func(ops *DatabaseOperations) error) error
}

type DatabaseOperations struct {
	accountOperation    AccountOperationInterface
	airlineOperation    AirlineOperationInterface
	flightOperation     FlightOperationInterface
	oracleOperation     OracleOperationInterface
	policyOperation     PolicyOperationInterface
	treasuryOperation   TreasuryOperationInterface
	governanceOperation GovernanceOperationInterface
	eventOperation      EventOperationInterface
	transactor          Transactor
}

func NewDatabaseOperations(
	accountOperation AccountOperationInterface,
	airlineOperation AirlineOperationInterface,
	flightOperation FlightOperationInterface,
	oracleOperation OracleOperationInterface,
	policyOperation PolicyOperationInterface,
	treasuryOperation TreasuryOperationInterface,
	governanceOperation GovernanceOperationInterface,
	eventOperation EventOperationInterface,
	transactor Transactor,
) *DatabaseOperations {
	return &DatabaseOperations{
		accountOperation:    accountOperation,
		airlineOperation:    airlineOperation,
		flightOperation:     flightOperation,
		oracleOperation:     oracleOperation,
		policyOperation:     policyOperation,
		treasuryOperation:   treasuryOperation,
		governanceOperation: governanceOperation,
		eventOperation:      eventOperation,
		transactor:          transactor,
	}
}

func (db *DatabaseOperations) AccountOperation() AccountOperationInterface { return db.accountOperation }

func (db *DatabaseOperations) AirlineOperation() AirlineOperationInterface { return db.airlineOperation }

func (db *DatabaseOperations) FlightOperation() FlightOperationInterface { return db.flightOperation }

func (db *DatabaseOperations) OracleOperation() OracleOperationInterface { return db.oracleOperation }

func (db *DatabaseOperations) PolicyOperation() PolicyOperationInterface { return db.policyOperation }

func (db *DatabaseOperations) TreasuryOperation() TreasuryOperationInterface {
	return db.treasuryOperation
}

func (db *DatabaseOperations) GovernanceOperation() GovernanceOperationInterface {
	return db.governanceOperation
}

func (db *DatabaseOperations) EventOperation() EventOperationInterface { return db.eventOperation }

func (db *DatabaseOperations) Transaction(fc func(ops *DatabaseOperations) error) error {
	return db.transactor.Transaction(fc)
}
