// Package ledger defines the error taxonomy shared by the bounty ledger
// services and the HTTP layer. Every invalid state transition maps to one
// of these sentinels so handlers can translate them to status codes.
package ledger

import "errors"

var (
	// ErrUnauthenticated is returned when a mutating call carries no identity.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNotFound is returned when a referenced bounty, bet, claim or user is absent.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyResolved is returned when mutating a bounty that has been settled.
	ErrAlreadyResolved = errors.New("bounty already resolved")

	// ErrBountyClosed is returned when betting on a bounty past its deadline.
	ErrBountyClosed = errors.New("bounty deadline passed")

	// ErrAlreadyClaimed is returned when finalizing a claim a second time.
	ErrAlreadyClaimed = errors.New("claim already claimed")

	// ErrInvalidAmount is returned for non-positive stakes.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a stake exceeds the user's balance.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrNotOracle is returned when a non-oracle caller attempts to resolve a bounty.
	ErrNotOracle = errors.New("caller is not an authorized oracle")
)
