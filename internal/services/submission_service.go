package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"projectmart_backend/internal/assets"
	"projectmart_backend/internal/email"
	"projectmart_backend/internal/forms"
	"projectmart_backend/internal/logger"
	"projectmart_backend/internal/repositories"
	"projectmart_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AssetStore is the slice of the asset store the submission pipeline needs.
type AssetStore interface {
	StoreMany(ctx context.Context, blobs []assets.Blob) ([]assets.Reference, error)
}

// SubmissionResult is the confirmation returned to the client: the generated
// id (for kinds whose schema defines one) and a summary of accepted columns.
type SubmissionResult struct {
	ID     *int64         `json:"id,omitempty"`
	Record map[string]any `json:"record"`
}

// SubmissionService orchestrates one submission: resolve schema, store
// attachments, normalize fields, project, insert.
type SubmissionService interface {
	Submit(ctx context.Context, db *gorm.DB, kind string, raw map[string][]string, files map[string][]*multipart.FileHeader) (*SubmissionResult, error)
}

type submissionService struct {
	registry *forms.Registry
	assets   AssetStore
	repo     repositories.SubmissionRepository
	email    email.Provider
}

func NewSubmissionService(registry *forms.Registry, store AssetStore, repo repositories.SubmissionRepository, mail email.Provider) SubmissionService {
	return &submissionService{
		registry: registry,
		assets:   store,
		repo:     repo,
		email:    mail,
	}
}

func (s *submissionService) Submit(ctx context.Context, db *gorm.DB, kind string, raw map[string][]string, files map[string][]*multipart.FileHeader) (*SubmissionResult, error) {
	entry, ok := s.registry.Resolve(kind)
	if !ok {
		return nil, apperrors.UnknownSubmissionKind(kind)
	}

	// Normalization and required-field checks are pure, so they run before
	// any file hits the disk: an invalid request leaves no trace anywhere.
	rec, err := forms.Normalize(raw, entry)
	if err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}
	if missing := forms.MissingRequired(rec, entry); len(missing) > 0 {
		return nil, apperrors.ValidationError(map[string]any{"missingFields": missing})
	}

	// Attachments are stored strictly before the database write. A failed
	// store aborts the submission with no row written.
	storedByField, err := s.storeAttachments(ctx, entry, files)
	if err != nil {
		return nil, err
	}

	values := entry.Project(rec, storedByField)

	id, err := s.repo.Insert(ctx, db, entry.Table, entry.ColumnNames(), values, entry.ReturnsID)
	if err != nil {
		// Stored assets are orphaned on purpose: losing a seller's upload
		// is worse than leaving a file for out-of-band reconciliation.
		for field, refs := range storedByField {
			for _, ref := range refs {
				logger.CtxWarn(ctx, "orphaned asset after persistence failure",
					"kind", kind, "table", entry.Table, "field", field, "stored_name", ref.StoredName)
			}
		}
		return nil, apperrors.PersistenceError(err, entry.Table)
	}

	result := &SubmissionResult{Record: s.summary(entry, values)}
	if entry.ReturnsID {
		result.ID = &id
	}

	if entry.NotifyEmail {
		go s.notify(rec)
	}

	logger.CtxInfo(ctx, "submission persisted", "kind", kind, "table", entry.Table)
	return result, nil
}

func (s *submissionService) storeAttachments(ctx context.Context, entry *forms.SchemaEntry, files map[string][]*multipart.FileHeader) (map[string][]assets.Reference, error) {
	storedByField := make(map[string][]assets.Reference)
	if !entry.HasFileFields() {
		return storedByField, nil
	}

	for _, ff := range entry.FileFields() {
		headers := files[ff.Name]
		if len(headers) == 0 {
			continue
		}
		if ff.MaxCount > 0 && len(headers) > ff.MaxCount {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("too many files for field %q (max %d)", ff.Name, ff.MaxCount))
		}

		blobs := make([]assets.Blob, 0, len(headers))
		closers := make([]io.Closer, 0, len(headers))
		for _, fh := range headers {
			blob, closer, err := assets.FromFileHeader(ff.Name, fh)
			if err != nil {
				closeAll(closers)
				return nil, apperrors.AssetWriteError(err)
			}
			blobs = append(blobs, blob)
			closers = append(closers, closer)
		}

		refs, err := s.assets.StoreMany(ctx, blobs)
		closeAll(closers)
		if err != nil {
			return nil, apperrors.AssetWriteError(err)
		}
		storedByField[ff.Name] = refs
	}

	return storedByField, nil
}

// summary echoes the accepted columns back to the caller.
func (s *submissionService) summary(entry *forms.SchemaEntry, values []any) map[string]any {
	record := make(map[string]any, len(entry.Columns))
	for i, col := range entry.Columns {
		record[col.Name] = values[i]
	}
	return record
}

func (s *submissionService) notify(rec forms.CanonicalRecord) {
	msg := email.ContactMessage{
		Name:    str(rec["name"]),
		Email:   str(rec["email"]),
		Subject: str(rec["subject"]),
		Message: str(rec["message"]),
	}
	if err := s.email.SendContactNotification(context.Background(), msg); err != nil {
		logger.Warn("contact notification failed", "error", err.Error())
	}
}

func str(v any) string {
	if sv, ok := v.(string); ok {
		return sv
	}
	return ""
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}
