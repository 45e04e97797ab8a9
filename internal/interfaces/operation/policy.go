// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrPolicyClaimed the policy was already paid out
	ErrPolicyClaimed = errors.New("policy already claimed")
)

// PolicyOperationInterface insurance policy operation interface
type PolicyOperationInterface interface {
	// AddPolicy writes a new policy
	AddPolicy(policy *InsurancePolicy) (err error)
	// GetPoliciesByPassenger returns every policy held by passenger ordered by id
	GetPoliciesByPassenger(passenger string) (policies []*InsurancePolicy, err error)
	// MarkPolicyClaimed flips the claimed flag, returns ErrPolicyClaimed when it was already set
	MarkPolicyClaimed(policy *InsurancePolicy, payout int64, claimedAt time.Time) (err error)
}
