package database

import (
	. "github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type PolicyOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewPolicyOperation(db *gorm.DB, queryTimeout time.Duration) *PolicyOperation {
	return &PolicyOperation{db: db, queryTimeout: queryTimeout}
}

func (policyOperation *PolicyOperation) AddPolicy(policy *InsurancePolicy) error {
	db, cancel := withTimeout(policyOperation.db, policyOperation.queryTimeout)
	defer cancel()
	return db.Create(policy).Error
}

func (policyOperation *PolicyOperation) GetPoliciesByPassenger(passenger string) (policies []*InsurancePolicy, err error) {
	db, cancel := withTimeout(policyOperation.db, policyOperation.queryTimeout)
	defer cancel()
	err = db.Where("passenger = ?", passenger).Order("id").Find(&policies).Error
	return
}

func (policyOperation *PolicyOperation) MarkPolicyClaimed(policy *InsurancePolicy, payout int64, claimedAt time.Time) error {
	db, cancel := withTimeout(policyOperation.db, policyOperation.queryTimeout)
	defer cancel()
	result := db.Model(&InsurancePolicy{}).
		Where("id = ? AND claimed = ?", policy.ID, false).
		Updates(map[string]interface{}{
			"claimed":    true,
			"payout":     payout,
			"claimed_at": claimedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPolicyClaimed
	}
	policy.Claimed = true
	policy.Payout = payout
	policy.ClaimedAt = &claimedAt
	return nil
}
