package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"deepfake-hunters/internal/config"
	"deepfake-hunters/internal/models"
	"deepfake-hunters/internal/repository"
)

// setupTestDB opens a fresh in-memory database per test
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Bounty{},
		&models.Bet{},
		&models.Claim{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func testLedgerConfig() config.LedgerConfig {
	return config.LedgerConfig{
		InitialBalance:  decimal.NewFromInt(1000),
		CreationBonus:   decimal.NewFromInt(10),
		SettlementBonus: decimal.NewFromInt(50),
		BountyWindow:    24 * time.Hour,
		SweepInterval:   5 * time.Minute,
	}
}

// createTestUser inserts a funded user directly through the repository
func createTestUser(t *testing.T, repo *repository.Repository, wallet string, balance int64) *models.User {
	t.Helper()

	user := &models.User{
		WalletAddress: wallet,
		Nickname:      "hunter_" + wallet,
		AptBalance:    decimal.NewFromInt(balance),
		PatBalance:    decimal.Zero,
	}
	if err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
