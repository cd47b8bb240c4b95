package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisor/internal/advisor"
	apperrors "advisor/internal/errors"
	"advisor/internal/models"
	"advisor/internal/pagination"
	"advisor/internal/services"
)

// PortfolioHandler handles portfolio recommendation requests. Creation runs
// the full pipeline for one request: the verified identity comes in from the
// auth middleware, the profile is validated, the prompt is built, the model
// is called once, and the combined record is written in a single insert. A
// failure at any stage stops the pipeline; nothing after it runs.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
	generator        advisor.Generator
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer, generator advisor.Generator) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, generator: generator}
}

// CreatePortfolioRequest represents the profile submission payload.
type CreatePortfolioRequest struct {
	Age            int     `json:"age" binding:"required,gt=0"`
	RiskTolerance  string  `json:"risk_tolerance" binding:"required,risk_tolerance"`
	InvestmentGoal string  `json:"investment_goal" binding:"required"`
	TimeHorizon    float64 `json:"time_horizon" binding:"required,gt=0"`
}

// CreatePortfolio handles a profile submission.
// @Summary     Create a portfolio recommendation
// @Description Submit an investment profile, generate advice for it, and store the combined record
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePortfolioRequest true "Investment profile"
// @Success     201 {object} models.Portfolio "Stored portfolio record"
// @Failure     400 {object} ErrorResponse "Invalid profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Generation or persistence failure"
// @Router      /portfolios [post]
func (h *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile := advisor.Profile{
		Age:            req.Age,
		RiskTolerance:  models.RiskTolerance(req.RiskTolerance),
		InvestmentGoal: req.InvestmentGoal,
		TimeHorizon:    req.TimeHorizon,
	}

	rec, err := h.generator.Generate(c.Request.Context(), advisor.BuildPrompt(profile))
	if err != nil {
		// No record is written for a failed generation; the text is gone.
		respondWithError(c, err)
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(userID, profile, rec)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, portfolio)
}

// GetLatest returns the authenticated user's most recent record.
// @Summary     Get latest portfolio recommendation
// @Description Get the most recently created portfolio record for the authenticated user
// @Tags        portfolios
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Portfolio "Latest portfolio record"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No records yet"
// @Router      /portfolios/latest [get]
func (h *PortfolioHandler) GetLatest(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	portfolio, err := h.portfolioService.LatestPortfolio(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// GetHistory returns the authenticated user's records, newest first.
// @Summary     Get portfolio history
// @Description Get paginated portfolio records for the authenticated user, newest first
// @Tags        portfolios
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Portfolio] "Paginated portfolio records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /portfolios [get]
func (h *PortfolioHandler) GetHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.portfolioService.GetHistory(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
