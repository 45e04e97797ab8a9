// Package operation
package operation

import "errors"

var (
	// ErrReserveInsufficient the pool reserve cannot cover a payout
	ErrReserveInsufficient = errors.New("pool reserve insufficient")
)

// TreasuryOperationInterface pool reserve and transfer ledger operation interface
type TreasuryOperationInterface interface {
	// GetReserve returns the value currently held by the pool
	GetReserve() (reserve int64, err error)
	// Deposit adds amount to the reserve and records the inbound transfer
	Deposit(identity string, amount int64, reference string) (err error)
	// Payout subtracts amount from the reserve and records the outbound transfer
	Payout(identity string, amount int64, reference string) (err error)
	// GetTransfers returns a page of transfers touching identity, newest first
	GetTransfers(identity string, page, pageSize int) (transfers []*Transfer, total int64, err error)
	// SumTransfers returns the total value of transfers of kind touching identity
	SumTransfers(identity string, kind TransferKind) (total int64, err error)
}
