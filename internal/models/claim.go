package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClaimStatus string

const (
	ClaimStatusPending ClaimStatus = "pending"
	ClaimStatusClaimed ClaimStatus = "claimed"
)

type ClaimType string

const (
	ClaimTypePayout       ClaimType = "payout"
	ClaimTypeCreatorBonus ClaimType = "creator_bonus"
	ClaimTypeRefund       ClaimType = "refund"
)

// Currency tags attached to claims
const (
	TokenAPT = "APT" // stake currency
	TokenPAT = "PAT" // reward points
)

// Claim represents a pending payout a user finalizes against an external
// transfer. Created only by settlement (or expiry refunds); mutated only by
// the pending -> claimed transition.
type Claim struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	BountyID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"bounty_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"amount"`
	Token         string          `gorm:"size:10;not null" json:"token"`
	ClaimType     ClaimType       `gorm:"size:50;not null" json:"claim_type"`
	Status        ClaimStatus     `gorm:"size:50;not null;default:pending;index" json:"status"`
	SettlementRef string          `gorm:"size:255;not null" json:"settlement_ref"`
	TxHash        *string         `gorm:"size:255" json:"tx_hash,omitempty"`
	ClaimedAt     *time.Time      `json:"claimed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (Claim) TableName() string {
	return "claims"
}

// MarkClaimedRequest carries the external transaction proof for a claim
type MarkClaimedRequest struct {
	TxHash string `json:"tx_hash" binding:"required"`
}
