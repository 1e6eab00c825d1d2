package domain

import (
	"math/big"
	"time"
)

// RentRecord tracks the vesting state of rental income deposited for a
// single token. One record per token id, created zero-valued on first use.
//
// DepositAmount is the principal still vesting under the current window.
// ClaimedAmount is what has been paid out of the current window's pool.
// UnclaimedAmount is value that finished vesting under an earlier window
// but was never claimed; it is immediately claimable.
type RentRecord struct {
	TokenID         int64     `json:"token_id"`
	RentToken       string    `json:"rent_token"` // set on first deposit, immutable after
	DepositAmount   *big.Int  `json:"deposit_amount"`
	ClaimedAmount   *big.Int  `json:"claimed_amount"`
	UnclaimedAmount *big.Int  `json:"unclaimed_amount"`
	DepositTime     time.Time `json:"deposit_time"`
	EndTime         time.Time `json:"end_time"`
}

// NewRentRecord returns a zero-valued record for a token that has never
// received a deposit.
func NewRentRecord(tokenID int64) *RentRecord {
	return &RentRecord{
		TokenID:         tokenID,
		DepositAmount:   big.NewInt(0),
		ClaimedAmount:   big.NewInt(0),
		UnclaimedAmount: big.NewInt(0),
	}
}

// VestedAt returns how much of DepositAmount has vested as of now.
// Vesting is linear between DepositTime and EndTime, rounded down. At or
// after EndTime the full amount is vested. The multiply happens on big.Int,
// so the intermediate product cannot overflow for any token magnitude.
func (r *RentRecord) VestedAt(now time.Time) *big.Int {
	if r.DepositAmount == nil || r.DepositAmount.Sign() == 0 {
		return big.NewInt(0)
	}
	if !now.Before(r.EndTime) {
		return new(big.Int).Set(r.DepositAmount)
	}
	elapsed := now.Unix() - r.DepositTime.Unix()
	if elapsed <= 0 {
		return big.NewInt(0)
	}
	duration := r.EndTime.Unix() - r.DepositTime.Unix()
	vested := new(big.Int).Mul(r.DepositAmount, big.NewInt(elapsed))
	return vested.Quo(vested, big.NewInt(duration))
}

// ClaimableAt returns the amount the token's owner could claim as of now:
// carried-over unclaimed value plus whatever has vested but not been paid
// out of the current window.
func (r *RentRecord) ClaimableAt(now time.Time) *big.Int {
	claimable := new(big.Int).Add(r.UnclaimedAmount, r.VestedAt(now))
	return claimable.Sub(claimable, r.ClaimedAmount)
}

// RentEventKind distinguishes audit trail entries.
type RentEventKind string

const (
	RentEventDeposit RentEventKind = "DEPOSIT"
	RentEventClaim   RentEventKind = "CLAIM"
)

// RentEvent is the audit record written for every successful deposit or
// claim, for external observers and indexers.
type RentEvent struct {
	ID        string        `json:"id"`
	Kind      RentEventKind `json:"kind"`
	TokenID   int64         `json:"token_id"`
	Actor     string        `json:"actor"` // depositor or claimer address
	RentToken string        `json:"rent_token"`
	Amount    *big.Int      `json:"amount"`
	CreatedOn time.Time     `json:"created_on"`
}

// RentSnapshot is a periodic per-token view of the vesting state, taken by
// the snapshot job for reporting.
type RentSnapshot struct {
	ID         string    `json:"id"`
	TokenID    int64     `json:"token_id"`
	RentToken  string    `json:"rent_token"`
	Claimable  *big.Int  `json:"claimable"`
	Claimed    *big.Int  `json:"claimed"`
	Depositing *big.Int  `json:"depositing"` // principal still vesting
	TakenOn    time.Time `json:"taken_on"`
	WindowEnds time.Time `json:"window_ends"`
}
