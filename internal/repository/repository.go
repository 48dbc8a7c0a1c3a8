// Package repository is the ledger store: durable keyed storage for bounties,
// bets, claims and user balances. Guarded updates return whether a row was
// actually changed so services can enforce at-most-once transitions without
// relying on cross-record transactions.
package repository

import (
	"context"
	"time"

	"deepfake-hunters/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ---- Users ----

// CreateUser inserts a new user record
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetUserByID retrieves a user by ID
func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByWallet retrieves a user by wallet address
func (r *Repository) GetUserByWallet(ctx context.Context, walletAddress string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreditBalance atomically adds amount to the user's balance for the given token
func (r *Repository) CreditBalance(ctx context.Context, userID uint, token string, amount decimal.Decimal) error {
	column := "apt_balance"
	if token == models.TokenPAT {
		column = "pat_balance"
	}

	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update(column, gorm.Expr(column+" + ?", amount)).Error
}

// DebitStakeBalance atomically subtracts amount from the user's APT balance.
// Returns false when the user is absent or the balance is insufficient.
func (r *Repository) DebitStakeBalance(ctx context.Context, userID uint, amount decimal.Decimal) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND apt_balance >= ?", userID, amount).
		Update("apt_balance", gorm.Expr("apt_balance - ?", amount))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ---- Bounties ----

// CreateBounty inserts a new bounty record
func (r *Repository) CreateBounty(ctx context.Context, bounty *models.Bounty) error {
	return r.db.WithContext(ctx).Create(bounty).Error
}

// GetBountyByID retrieves a bounty by ID
func (r *Repository) GetBountyByID(ctx context.Context, bountyID uuid.UUID) (*models.Bounty, error) {
	var bounty models.Bounty
	err := r.db.WithContext(ctx).Where("id = ?", bountyID).First(&bounty).Error
	if err != nil {
		return nil, err
	}
	return &bounty, nil
}

// ListBounties retrieves the most recent bounties, newest first
func (r *Repository) ListBounties(ctx context.Context, limit int) ([]*models.Bounty, error) {
	var bounties []*models.Bounty
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&bounties).Error
	return bounties, err
}

// ListExpiredPending retrieves pending bounties whose deadline has passed
func (r *Repository) ListExpiredPending(ctx context.Context, now time.Time) ([]*models.Bounty, error) {
	var bounties []*models.Bounty
	err := r.db.WithContext(ctx).
		Where("is_resolved = ? AND deadline < ?", false, now).
		Find(&bounties).Error
	return bounties, err
}

// IncrementPool adds amount to one side's pool. Guarded on is_resolved so a
// bet can never bump a pool after the settlement snapshot; returns false if
// the bounty was resolved (or absent) in the meantime.
func (r *Repository) IncrementPool(ctx context.Context, bountyID uuid.UUID, isReal bool, amount decimal.Decimal) (bool, error) {
	column := "ai_pool"
	if isReal {
		column = "real_pool"
	}

	result := r.db.WithContext(ctx).Model(&models.Bounty{}).
		Where("id = ? AND is_resolved = ?", bountyID, false).
		Update(column, gorm.Expr(column+" + ?", amount))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkResolved flips the resolution flag exactly once (compare-and-set on
// is_resolved). Returns false when the bounty was already resolved.
func (r *Repository) MarkResolved(ctx context.Context, bountyID uuid.UUID, isReal bool, resolvedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Bounty{}).
		Where("id = ? AND is_resolved = ?", bountyID, false).
		Updates(map[string]interface{}{
			"is_resolved": true,
			"is_real":     isReal,
			"status":      models.StatusForVerdict(isReal),
			"resolved_at": resolvedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkExpired retires a stale pending bounty through the same CAS guard as
// MarkResolved, so expiry and settlement are mutually exclusive.
func (r *Repository) MarkExpired(ctx context.Context, bountyID uuid.UUID, expiredAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Bounty{}).
		Where("id = ? AND is_resolved = ?", bountyID, false).
		Updates(map[string]interface{}{
			"is_resolved": true,
			"status":      models.BountyStatusExpired,
			"resolved_at": expiredAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ---- Bets ----

// CreateBet inserts a new bet record
func (r *Repository) CreateBet(ctx context.Context, bet *models.Bet) error {
	return r.db.WithContext(ctx).Create(bet).Error
}

// DeleteBet removes a bet record. Only used to compensate a bet insert whose
// pool update lost the race against resolution.
func (r *Repository) DeleteBet(ctx context.Context, betID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Bet{}, "id = ?", betID).Error
}

// GetBetsByBounty retrieves all bets for a bounty, oldest first
func (r *Repository) GetBetsByBounty(ctx context.Context, bountyID uuid.UUID) ([]*models.Bet, error) {
	var bets []*models.Bet
	err := r.db.WithContext(ctx).
		Where("bounty_id = ?", bountyID).
		Order("created_at ASC").
		Find(&bets).Error
	return bets, err
}

// ---- Claims ----

// CreateClaim inserts a new claim record
func (r *Repository) CreateClaim(ctx context.Context, claim *models.Claim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

// GetClaimByID retrieves a claim by ID
func (r *Repository) GetClaimByID(ctx context.Context, claimID uuid.UUID) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.WithContext(ctx).Where("id = ?", claimID).First(&claim).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// ListPendingClaimsByUser retrieves a user's pending claims, newest first
func (r *Repository) ListPendingClaimsByUser(ctx context.Context, userID uint) ([]*models.Claim, error) {
	var claims []*models.Claim
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.ClaimStatusPending).
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}

// GetClaimsByBounty retrieves all claims issued for a bounty
func (r *Repository) GetClaimsByBounty(ctx context.Context, bountyID uuid.UUID) ([]*models.Claim, error) {
	var claims []*models.Claim
	err := r.db.WithContext(ctx).
		Where("bounty_id = ?", bountyID).
		Order("created_at ASC").
		Find(&claims).Error
	return claims, err
}

// MarkClaimed transitions a claim pending -> claimed exactly once
// (compare-and-set on status). Returns false when already claimed.
func (r *Repository) MarkClaimed(ctx context.Context, claimID uuid.UUID, txHash string, claimedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Claim{}).
		Where("id = ? AND status = ?", claimID, models.ClaimStatusPending).
		Updates(map[string]interface{}{
			"status":     models.ClaimStatusClaimed,
			"tx_hash":    txHash,
			"claimed_at": claimedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ---- Statistics ----

// CountBountiesByCreator returns how many bounties a user has posted
func (r *Repository) CountBountiesByCreator(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bounty{}).
		Where("creator_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountBetsByUser returns how many bets a user has placed
func (r *Repository) CountBetsByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bet{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountPayoutClaimsByUser returns how many payout claims a user has won
func (r *Repository) CountPayoutClaimsByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Claim{}).
		Where("user_id = ? AND claim_type = ?", userID, models.ClaimTypePayout).
		Count(&count).Error
	return count, err
}
