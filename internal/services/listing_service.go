package services

import (
	"context"

	"projectmart_backend/internal/forms"
	"projectmart_backend/internal/models"
	"projectmart_backend/internal/repositories"
	"projectmart_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ListingQueryService is the read side of the marketplace: full fetch,
// substring search over the schema-declared text columns, and lookup by
// natural key (title). All methods are side-effect free.
type ListingQueryService interface {
	ListAll(ctx context.Context, db *gorm.DB, kind string) ([]models.FreelanceProject, error)
	Search(ctx context.Context, db *gorm.DB, kind, term string) ([]models.FreelanceProject, error)
	GetByTitle(ctx context.Context, db *gorm.DB, kind, title string) (*models.FreelanceProject, error)
}

type listingQueryService struct {
	registry *forms.Registry
	repo     repositories.ListingRepository
}

func NewListingQueryService(registry *forms.Registry, repo repositories.ListingRepository) ListingQueryService {
	return &listingQueryService{
		registry: registry,
		repo:     repo,
	}
}

// resolveListable maps a kind onto its schema and rejects kinds that have no
// marketplace view (only freelance listings are browsable).
func (s *listingQueryService) resolveListable(kind string) (*forms.SchemaEntry, error) {
	entry, ok := s.registry.Resolve(kind)
	if !ok {
		return nil, apperrors.UnknownSubmissionKind(kind)
	}
	if entry.Table != (models.FreelanceProject{}).TableName() {
		return nil, apperrors.NewBadRequestError("kind has no listing view: " + kind)
	}
	return entry, nil
}

func (s *listingQueryService) ListAll(ctx context.Context, db *gorm.DB, kind string) ([]models.FreelanceProject, error) {
	if _, err := s.resolveListable(kind); err != nil {
		return nil, err
	}
	projects, err := s.repo.ListAll(ctx, db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *listingQueryService) Search(ctx context.Context, db *gorm.DB, kind, term string) ([]models.FreelanceProject, error) {
	entry, err := s.resolveListable(kind)
	if err != nil {
		return nil, err
	}
	projects, err := s.repo.Search(ctx, db, term, entry.SearchColumns())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *listingQueryService) GetByTitle(ctx context.Context, db *gorm.DB, kind, title string) (*models.FreelanceProject, error) {
	if _, err := s.resolveListable(kind); err != nil {
		return nil, err
	}
	project, err := s.repo.FindByTitle(ctx, db, title)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Project")
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}
