package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"advisor/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// TestProfile returns a valid moderate-risk investment profile.
func TestProfile() (age int, riskTolerance, goal string, timeHorizon float64) {
	return 30, string(models.RiskModerate), "retirement", 25
}

// CreateTestPortfolio creates a stored portfolio record for the user with
// the given recommendation text and creation time.
func CreateTestPortfolio(t *testing.T, db *gorm.DB, userID, recommendation string, createdAt time.Time) *models.Portfolio {
	t.Helper()

	portfolio := &models.Portfolio{
		UserID:         userID,
		Age:            30,
		RiskTolerance:  models.RiskModerate,
		InvestmentGoal: fmt.Sprintf("goal %d", nextID()),
		TimeHorizon:    25,
		Recommendation: recommendation,
		GeneratedAt:    createdAt.UTC(),
		CreatedAt:      createdAt,
	}
	if err := db.Create(portfolio).Error; err != nil {
		t.Fatalf("failed to create test portfolio: %v", err)
	}
	return portfolio
}
