// Package operation
package operation

// GovernanceOperationInterface operational flag and caller authorization operation interface
type GovernanceOperationInterface interface {
	// IsOperational returns the flag of ledger, a missing flag counts as operational
	IsOperational(ledger string) (enabled bool, err error)
	// SetOperational stores the flag of ledger
	SetOperational(ledger string, enabled bool) (err error)
	// GetOperationalFlags returns every stored flag
	GetOperationalFlags() (flags []*OperationalFlag, err error)
	// IsAuthorizedCaller reports whether identity may trigger oracle requests
	IsAuthorizedCaller(identity string) (authorized bool, err error)
	// AddAuthorizedCaller authorizes identity, authorizing twice is a no-op
	AddAuthorizedCaller(identity string) (err error)
	// RemoveAuthorizedCaller revokes identity, revoking an unknown identity is a no-op
	RemoveAuthorizedCaller(identity string) (err error)
}
