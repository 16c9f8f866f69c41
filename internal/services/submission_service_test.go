package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"projectmart_backend/internal/assets"
	"projectmart_backend/internal/email"
	"projectmart_backend/internal/forms"
	"projectmart_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSubmissionRepo struct {
	insertErr error
	returnID  int64

	calls   int
	table   string
	columns []string
	values  []any
}

func (f *fakeSubmissionRepo) Insert(ctx context.Context, db *gorm.DB, table string, columns []string, values []any, returningID bool) (int64, error) {
	f.calls++
	f.table = table
	f.columns = columns
	f.values = values
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	return f.returnID, nil
}

type fakeAssetStore struct {
	err   error
	calls int
	blobs []assets.Blob
}

func (f *fakeAssetStore) StoreMany(ctx context.Context, blobs []assets.Blob) ([]assets.Reference, error) {
	f.calls++
	f.blobs = append(f.blobs, blobs...)
	if f.err != nil {
		return nil, f.err
	}
	refs := make([]assets.Reference, len(blobs))
	for i, b := range blobs {
		refs[i] = assets.Reference{
			OriginalName: b.OriginalName,
			StoredName:   fmt.Sprintf("%s-stored-%d", b.FieldName, i),
			RelativePath: fmt.Sprintf("%s-stored-%d", b.FieldName, i),
		}
	}
	return refs, nil
}

func newTestService(t *testing.T, repo *fakeSubmissionRepo, store *fakeAssetStore) SubmissionService {
	t.Helper()
	registry, err := forms.NewRegistry(forms.DefaultEntries())
	require.NoError(t, err)
	return NewSubmissionService(registry, store, repo, email.NoopProvider{})
}

// makeFileHeaders builds real multipart headers so the service can open them.
func makeFileHeaders(t *testing.T, field string, names ...string) map[string][]*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, name := range names {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = io.WriteString(part, "content of "+name)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File
}

func TestSubmitUnknownKind(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	store := &fakeAssetStore{}
	svc := newTestService(t, repo, store)

	_, err := svc.Submit(context.Background(), nil, "no-such-kind", nil, nil)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeUnknownSubmissionKind, appErr.Code)
	assert.Zero(t, repo.calls)
	assert.Zero(t, store.calls)
}

func TestSubmitMissingRequiredFields(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	store := &fakeAssetStore{}
	svc := newTestService(t, repo, store)

	raw := map[string][]string{
		"title":      {"My Project"},
		"sellerName": {""}, // blank counts as missing
	}
	files := makeFileHeaders(t, "zipFile", "bundle.zip")

	_, err := svc.Submit(context.Background(), nil, "freelance", raw, files)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	// An invalid request must leave no files and no rows.
	assert.Zero(t, store.calls)
	assert.Zero(t, repo.calls)
}

func TestSubmitAssetFailureWritesNoRow(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	store := &fakeAssetStore{err: errors.New("disk full")}
	svc := newTestService(t, repo, store)

	raw := map[string][]string{
		"title":      {"My Project"},
		"sellerName": {"Ada"},
	}
	files := makeFileHeaders(t, "zipFile", "bundle.zip")

	_, err := svc.Submit(context.Background(), nil, "freelance", raw, files)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeAssetWriteFailed, appErr.Code)
	assert.Zero(t, repo.calls)
}

func TestSubmitTooManyFiles(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	store := &fakeAssetStore{}
	svc := newTestService(t, repo, store)

	raw := map[string][]string{
		"title":      {"My Project"},
		"sellerName": {"Ada"},
	}
	files := makeFileHeaders(t, "zipFile", "a.zip")
	extra := makeFileHeaders(t, "zipFile", "b.zip")
	files["zipFile"] = append(files["zipFile"], extra["zipFile"]...)

	_, err := svc.Submit(context.Background(), nil, "freelance", raw, files)

	assert.Error(t, err)
	assert.Zero(t, store.calls)
	assert.Zero(t, repo.calls)
}

func TestSubmitPersistenceFailureReportsOrphans(t *testing.T) {
	repo := &fakeSubmissionRepo{insertErr: errors.New("connection reset")}
	store := &fakeAssetStore{}
	svc := newTestService(t, repo, store)

	raw := map[string][]string{
		"title":      {"My Project"},
		"sellerName": {"Ada"},
	}
	files := makeFileHeaders(t, "zipFile", "bundle.zip")

	_, err := svc.Submit(context.Background(), nil, "freelance", raw, files)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodePersistenceFailed, appErr.Code)

	// The file made it to storage before the insert failed.
	assert.Equal(t, 1, store.calls)
}

func TestSubmitSuccessWithID(t *testing.T) {
	repo := &fakeSubmissionRepo{returnID: 42}
	store := &fakeAssetStore{}
	svc := newTestService(t, repo, store)

	raw := map[string][]string{
		"title":         {"My Project"},
		"sellerName":    {"Ada"},
		"domainName":    {"web"},
		"minPrice":      {"10"},
		"maxPrice":      {""},
		"projectDetail": {"a shop"},
	}
	files := makeFileHeaders(t, "zipFile", "bundle.zip")

	result, err := svc.Submit(context.Background(), nil, "freelance", raw, files)
	require.NoError(t, err)

	require.NotNil(t, result.ID)
	assert.Equal(t, int64(42), *result.ID)

	assert.Equal(t, "freelance", repo.table)
	assert.Equal(t,
		[]string{"title", "seller_name", "domain_name", "min_price", "max_price", "zip_file", "images", "project_detail"},
		repo.columns)
	require.Len(t, repo.values, len(repo.columns))

	assert.Equal(t, "My Project", repo.values[0])
	assert.Equal(t, float64(10), repo.values[3])
	assert.Nil(t, repo.values[4])
	assert.Equal(t, "zipFile-stored-0", repo.values[5])

	assert.Equal(t, "My Project", result.Record["title"])
}

func TestSubmitSuccessWithoutID(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	store := &fakeAssetStore{}
	svc := newTestService(t, repo, store)

	raw := map[string][]string{
		"collegename": {"MIT"},
		"projectname": {"Robot"},
	}

	result, err := svc.Submit(context.Background(), nil, "college", raw, nil)
	require.NoError(t, err)

	assert.Nil(t, result.ID)
	assert.Equal(t, "college_projects", repo.table)
	assert.Equal(t, "MIT", result.Record["collegename"])
	assert.Zero(t, store.calls)
}
