package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bet represents a stake on one side of a bounty. Bets are only created
// while the parent bounty is pending and are immutable afterwards.
type Bet struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BountyID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"bounty_id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"amount"`
	IsReal    bool            `gorm:"not null" json:"is_real"`
	CreatedAt time.Time       `json:"created_at"`
}

func (Bet) TableName() string {
	return "bets"
}

// PlaceBetRequest represents a request to stake on a bounty
type PlaceBetRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	IsReal *bool           `json:"is_real" binding:"required"`
}
