package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"projectmart_backend/internal/logger"
	"projectmart_backend/internal/storage"

	"github.com/disintegration/imaging"
)

// Blob is one uploaded binary on its way into storage.
type Blob struct {
	FieldName    string
	OriginalName string
	Content      io.Reader
}

// Reference is the stable handle a stored blob is persisted under. After the
// owning record is written, the file is only ever reached by StoredName.
type Reference struct {
	OriginalName string `json:"originalName"`
	StoredName   string `json:"storedName"`
	SizeBytes    int64  `json:"sizeBytes,omitempty"`
	RelativePath string `json:"relativePath"`
}

// Store writes uploaded blobs and hands out collision-free stored names.
type Store struct {
	storage      storage.Storage
	thumbnailDim int

	// Process-wide monotonic counter: two uploads landing in the same
	// millisecond still get distinct names.
	seq atomic.Uint64
}

func NewStore(st storage.Storage, thumbnailDim int) *Store {
	if thumbnailDim <= 0 {
		thumbnailDim = 300
	}
	return &Store{
		storage:      st,
		thumbnailDim: thumbnailDim,
	}
}

// Store persists a single blob and returns its reference.
func (s *Store) Store(ctx context.Context, blob Blob) (Reference, error) {
	name := s.storedName(blob)

	if err := s.storage.Save(ctx, name, blob.Content); err != nil {
		return Reference{}, fmt.Errorf("store %q (field %s): %w", blob.OriginalName, blob.FieldName, err)
	}

	size, err := s.storage.GetSize(ctx, name)
	if err != nil {
		// The file is on disk; size is advisory metadata.
		logger.CtxWarn(ctx, "stored file size unavailable", "stored_name", name, "error", err.Error())
		size = 0
	}

	ref := Reference{
		OriginalName: blob.OriginalName,
		StoredName:   name,
		SizeBytes:    size,
		RelativePath: name,
	}

	if isImageName(name) {
		go s.generateThumbnail(name)
	}

	return ref, nil
}

// StoreMany persists blobs in input order. Any failure aborts the whole call;
// blobs already written in the batch are left on disk and logged for
// reconciliation rather than deleted.
func (s *Store) StoreMany(ctx context.Context, blobs []Blob) ([]Reference, error) {
	refs := make([]Reference, 0, len(blobs))
	for _, blob := range blobs {
		ref, err := s.Store(ctx, blob)
		if err != nil {
			for _, stored := range refs {
				logger.CtxWarn(ctx, "orphaned asset after aborted batch", "stored_name", stored.StoredName)
			}
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// FromFileHeader adapts a multipart file into a Blob. The returned closer must
// be closed after the blob is stored.
func FromFileHeader(fieldName string, fh *multipart.FileHeader) (Blob, io.Closer, error) {
	f, err := fh.Open()
	if err != nil {
		return Blob{}, nil, fmt.Errorf("open uploaded file %q: %w", fh.Filename, err)
	}
	return Blob{
		FieldName:    fieldName,
		OriginalName: fh.Filename,
		Content:      f,
	}, f, nil
}

// storedName builds "<field>-<unix ms>-<seq><ext>". The extension comes from
// the original name; everything else is generated, so the result is a valid
// URL path segment regardless of what the client sent.
func (s *Store) storedName(blob Blob) string {
	ext := strings.ToLower(filepath.Ext(blob.OriginalName))
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\ %?#") {
		ext = ""
	}

	field := sanitizeSegment(blob.FieldName)
	if field == "" {
		field = sanitizeSegment(strings.TrimSuffix(blob.OriginalName, ext))
	}
	if field == "" {
		field = "file"
	}

	return fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), s.seq.Add(1), ext)
}

func sanitizeSegment(in string) string {
	var b strings.Builder
	for _, r := range in {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), ".")
}

func isImageName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}

// generateThumbnail renders a square thumbnail next to the original under
// thumbs/. Runs in the background; failures are logged, never surfaced.
func (s *Store) generateThumbnail(name string) {
	ctx := context.Background()

	src, err := s.storage.Get(ctx, name)
	if err != nil {
		logger.Warn("thumbnail: cannot reopen stored image", "stored_name", name, "error", err.Error())
		return
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		logger.Warn("thumbnail: decode failed", "stored_name", name, "error", err.Error())
		return
	}

	thumb := imaging.Thumbnail(img, s.thumbnailDim, s.thumbnailDim, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		logger.Warn("thumbnail: encode failed", "stored_name", name, "error", err.Error())
		return
	}

	thumbPath := filepath.Join("thumbs", name)
	if err := s.storage.Save(ctx, thumbPath, &buf); err != nil {
		logger.Warn("thumbnail: save failed", "stored_name", name, "error", err.Error())
	}
}
