package services

import (
	"errors"

	"gorm.io/gorm"

	"advisor/internal/advisor"
	apperrors "advisor/internal/errors"
	"advisor/internal/models"
	"advisor/internal/pagination"
)

// portfolioService stores and retrieves portfolio records.
type portfolioService struct {
	db *gorm.DB
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db}
}

// CreatePortfolio writes the profile and its recommendation as one record in
// a single insert. The id and created_at are server-assigned; there is no
// partial or draft state. The underlying driver message is surfaced inside
// the wrapped store error for the logs.
func (s *portfolioService) CreatePortfolio(userID string, profile advisor.Profile, rec advisor.Recommendation) (*models.Portfolio, error) {
	portfolio := &models.Portfolio{
		UserID:         userID,
		Age:            profile.Age,
		RiskTolerance:  profile.RiskTolerance,
		InvestmentGoal: profile.InvestmentGoal,
		TimeHorizon:    profile.TimeHorizon,
		Recommendation: rec.Text,
		GeneratedAt:    rec.GeneratedAt,
	}

	if err := s.db.Create(portfolio).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPortfolioStore, err)
	}

	return portfolio, nil
}

// LatestPortfolio returns the user's most recent record. Ties on created_at
// break by id, which is time-ordered (UUIDv7). A user with no records gets
// ErrPortfolioNotFound; callers treat that as a valid empty state.
func (s *portfolioService) LatestPortfolio(userID string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		First(&portfolio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &portfolio, nil
}

// ListPortfolios returns every record for the user, newest first. An empty
// slice is a valid result, not an error.
func (s *portfolioService) ListPortfolios(userID string) ([]models.Portfolio, error) {
	portfolios := []models.Portfolio{}
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&portfolios).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return portfolios, nil
}

// GetHistory returns a page of the user's records, newest first.
func (s *portfolioService) GetHistory(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Portfolio], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Portfolio{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var portfolios []models.Portfolio
	if err := base.Order("created_at DESC").Order("id DESC").
		Scopes(pagination.Paginate(page)).Find(&portfolios).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(portfolios, page.Page, page.PageSize, totalItems)
	return &result, nil
}
