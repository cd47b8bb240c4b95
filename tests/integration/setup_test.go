package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"advisor/internal/advisor"
	apperrors "advisor/internal/errors"
	"advisor/internal/handlers"
	"advisor/internal/logger"
	"advisor/internal/middleware"
	"advisor/internal/models"
	"advisor/internal/services"
	"advisor/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB        *gorm.DB
	Router    *gin.Engine
	Generator *stubGenerator
}

// stubGenerator stands in for the generation provider.
type stubGenerator struct {
	text  string
	err   error
	calls atomic.Int64
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (advisor.Recommendation, error) {
	g.calls.Add(1)
	if g.err != nil {
		return advisor.Recommendation{}, apperrors.Wrap(apperrors.ErrGenerationFailed, g.err)
	}
	return advisor.Recommendation{Text: g.text, GeneratedAt: time.Now().UTC()}, nil
}

var _ advisor.Generator = (*stubGenerator)(nil)

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Portfolio{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database and a stubbed generation provider.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	generator := &stubGenerator{text: "Allocate 70% equities, 30% bonds."}

	// Services
	userService := services.NewUserService(db)
	portfolioService := services.NewPortfolioService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, generator)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(userService))

	protected.GET("/profile", authHandler.GetProfile)

	portfolios := protected.Group("/portfolios")
	portfolios.POST("", portfolioHandler.CreatePortfolio)
	portfolios.GET("", portfolioHandler.GetHistory)
	portfolios.GET("/latest", portfolioHandler.GetLatest)

	return &testApp{DB: db, Router: router, Generator: generator}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// countPortfolios returns the number of stored records for all users.
func (app *testApp) countPortfolios(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := app.DB.Model(&models.Portfolio{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count portfolios: %v", err)
	}
	return count
}
