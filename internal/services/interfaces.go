package services

import (
	"advisor/internal/advisor"
	"advisor/internal/models"
	"advisor/internal/pagination"
)

// UserServicer defines the contract for user-related business logic. It is
// also the identity store the auth middleware verifies bearer tokens against.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	RecordLogin(userID string) error
}

// PortfolioServicer defines the contract for portfolio record storage and
// retrieval. Every operation is scoped to the owning user: a caller can never
// observe another user's records.
type PortfolioServicer interface {
	CreatePortfolio(userID string, profile advisor.Profile, rec advisor.Recommendation) (*models.Portfolio, error)
	LatestPortfolio(userID string) (*models.Portfolio, error)
	ListPortfolios(userID string) ([]models.Portfolio, error)
	GetHistory(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Portfolio], error)
}
