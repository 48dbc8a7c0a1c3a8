package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BountyStatus string

const (
	BountyStatusPending      BountyStatus = "pending"
	BountyStatusVerifiedReal BountyStatus = "verified_real"
	BountyStatusVerifiedAI   BountyStatus = "verified_ai"
	BountyStatusExpired      BountyStatus = "expired"
)

// StatusForVerdict maps an oracle verdict to the terminal bounty status
func StatusForVerdict(isReal bool) BountyStatus {
	if isReal {
		return BountyStatusVerifiedReal
	}
	return BountyStatusVerifiedAI
}

// Bounty represents a content item open for a real/AI verdict and staking.
// Pools only move while status is pending; IsResolved flips exactly once.
type Bounty struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ContentURL string          `gorm:"size:1000;not null" json:"content_url"`
	CreatorID  uint            `gorm:"not null;index" json:"creator_id"`
	Status     BountyStatus    `gorm:"size:50;not null;default:pending;index" json:"status"`
	RealPool   decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"real_pool"`
	AIPool     decimal.Decimal `gorm:"column:ai_pool;type:decimal(20,8);not null" json:"ai_pool"`
	IsResolved bool            `gorm:"not null;default:false" json:"is_resolved"`
	IsReal     *bool           `json:"is_real,omitempty"`
	Deadline   time.Time       `gorm:"not null;index" json:"deadline"`
	ResolvedAt *time.Time      `json:"resolved_at,omitempty"`
	CreatedAt  time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (Bounty) TableName() string {
	return "bounties"
}

// TotalPool returns the combined stake across both sides
func (b *Bounty) TotalPool() decimal.Decimal {
	return b.RealPool.Add(b.AIPool)
}

// CreateBountyRequest represents a request to post a new bounty
type CreateBountyRequest struct {
	ContentURL string `json:"content_url" binding:"required"`
}

// ResolveBountyRequest carries the oracle verdict for a bounty
type ResolveBountyRequest struct {
	IsReal *bool `json:"is_real" binding:"required"`
}
