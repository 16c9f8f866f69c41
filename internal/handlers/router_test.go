package handlers

import (
	"context"
	"mime/multipart"
	"testing"

	"projectmart_backend/internal/middleware"
	"projectmart_backend/internal/models"
	"projectmart_backend/internal/payments"
	"projectmart_backend/internal/services"
	"projectmart_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// newTestRouter builds a bare engine with just the db middleware; the fakes
// below never touch the handle.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.DBMiddleware(&gorm.DB{}))
	return router
}

func testValidator() *validator.Validator {
	return validator.New()
}

type fakeSubmissionService struct {
	result *services.SubmissionResult
	err    error

	kind  string
	raw   map[string][]string
	files map[string][]*multipart.FileHeader
}

func (f *fakeSubmissionService) Submit(ctx context.Context, db *gorm.DB, kind string, raw map[string][]string, files map[string][]*multipart.FileHeader) (*services.SubmissionResult, error) {
	f.kind = kind
	f.raw = raw
	f.files = files
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeListingService struct {
	projects []models.FreelanceProject
	project  *models.FreelanceProject
	err      error

	kind string
	term string
}

func (f *fakeListingService) ListAll(ctx context.Context, db *gorm.DB, kind string) ([]models.FreelanceProject, error) {
	f.kind = kind
	return f.projects, f.err
}

func (f *fakeListingService) Search(ctx context.Context, db *gorm.DB, kind, term string) ([]models.FreelanceProject, error) {
	f.kind = kind
	f.term = term
	return f.projects, f.err
}

func (f *fakeListingService) GetByTitle(ctx context.Context, db *gorm.DB, kind, title string) (*models.FreelanceProject, error) {
	f.kind = kind
	if f.err != nil {
		return nil, f.err
	}
	return f.project, nil
}

type fakeAuthService struct {
	token string
	err   error
}

func (f *fakeAuthService) VerifyCredentials(ctx context.Context, db *gorm.DB, username, password string) (bool, error) {
	return f.err == nil, nil
}

func (f *fakeAuthService) Login(ctx context.Context, db *gorm.DB, username, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

type fakeGateway struct {
	order *payments.Order
	err   error

	amount  int64
	receipt string
}

func (f *fakeGateway) CreateOrder(ctx context.Context, amountMinorUnits int64, receipt string) (*payments.Order, error) {
	f.amount = amountMinorUnits
	f.receipt = receipt
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}
