package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a hunter account in the system
type User struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	WalletAddress string          `gorm:"uniqueIndex;not null" json:"wallet_address"`
	Nickname      string          `gorm:"uniqueIndex;not null" json:"nickname"`
	AptBalance    decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"apt_balance"`
	PatBalance    decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"pat_balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// WalletLoginRequest represents a wallet login request
type WalletLoginRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
}

// UserProfile represents a user profile with ledger statistics
type UserProfile struct {
	User            User  `json:"user"`
	BountiesCreated int64 `json:"bounties_created"`
	BetsPlaced      int64 `json:"bets_placed"`
	ClaimsWon       int64 `json:"claims_won"`
}
