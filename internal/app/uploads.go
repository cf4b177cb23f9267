package app

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/webp"

	"elhamas/internal/adapters/observability"
	"elhamas/internal/domain"
)

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadService stores admin image uploads and returns their public URL.
type UploadService struct {
	store    domain.ObjectStorage
	maxBytes int64
	now      func() time.Time
}

func NewUploadService(store domain.ObjectStorage, maxBytes int64) *UploadService {
	return &UploadService{store: store, maxBytes: maxBytes, now: time.Now}
}

func (s *UploadService) MaxBytes() int64 { return s.maxBytes }

// Upload reads at most maxBytes from r, checks that it is a decodable
// jpeg/png/gif/webp image and stores it under uploads/YYYY/MM/.
func (s *UploadService) Upload(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		observability.ObserveUpload("error")
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		observability.ObserveUpload("too_large")
		return "", domain.ErrTooLarge
	}
	if len(data) == 0 {
		observability.ObserveUpload("rejected")
		return "", domain.Invalid("file", "file is required")
	}

	mt := mimetype.Detect(data)
	ext, ok := imageExt[mt.String()]
	if !ok {
		observability.ObserveUpload("rejected")
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupported, mt.String())
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		observability.ObserveUpload("rejected")
		return "", domain.Invalid("file", "file is not a valid image")
	}

	now := s.now().UTC()
	key := fmt.Sprintf("uploads/%04d/%02d/%s%s", now.Year(), int(now.Month()), uuid.NewString(), ext)
	url, err := s.store.Upload(ctx, key, mt.String(), bytes.NewReader(data), int64(len(data)))
	if err != nil {
		observability.ObserveUpload("error")
		return "", fmt.Errorf("store upload: %w", err)
	}
	observability.ObserveUpload("ok")
	log.Info().Str("key", key).Int("width", cfg.Width).Int("height", cfg.Height).Msg("image uploaded")
	return url, nil
}
