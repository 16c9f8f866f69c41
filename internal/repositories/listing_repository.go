package repositories

import (
	"context"
	"fmt"
	"strings"

	"projectmart_backend/internal/models"

	"gorm.io/gorm"
)

// ListingRepository is the read side of the freelance marketplace.
type ListingRepository interface {
	// ListAll returns every listing, id ascending for deterministic order.
	ListAll(ctx context.Context, db *gorm.DB) ([]models.FreelanceProject, error)

	// Search matches term case-insensitively as a substring, OR across the
	// given text columns.
	Search(ctx context.Context, db *gorm.DB, term string, columns []string) ([]models.FreelanceProject, error)

	// FindByTitle looks a listing up by its natural key.
	// Returns gorm.ErrRecordNotFound on a miss.
	FindByTitle(ctx context.Context, db *gorm.DB, title string) (*models.FreelanceProject, error)
}

type listingRepository struct{}

func NewListingRepository() ListingRepository {
	return &listingRepository{}
}

func (r *listingRepository) ListAll(ctx context.Context, db *gorm.DB) ([]models.FreelanceProject, error) {
	var projects []models.FreelanceProject
	err := db.WithContext(ctx).Order("id ASC").Find(&projects).Error
	return projects, err
}

func (r *listingRepository) Search(ctx context.Context, db *gorm.DB, term string, columns []string) ([]models.FreelanceProject, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("search: no searchable columns declared")
	}

	conditions := make([]string, len(columns))
	args := make([]any, len(columns))
	pattern := "%" + term + "%"
	for i, col := range columns {
		conditions[i] = col + " ILIKE ?"
		args[i] = pattern
	}

	var projects []models.FreelanceProject
	err := db.WithContext(ctx).
		Where(strings.Join(conditions, " OR "), args...).
		Order("id ASC").
		Find(&projects).Error
	return projects, err
}

func (r *listingRepository) FindByTitle(ctx context.Context, db *gorm.DB, title string) (*models.FreelanceProject, error) {
	var project models.FreelanceProject
	if err := db.WithContext(ctx).Where("title = ?", title).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}
