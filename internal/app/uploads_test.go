package app_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"regexp"
	"strings"
	"testing"

	"elhamas/internal/app"
	"elhamas/internal/domain"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestUpload_StoresImage(t *testing.T) {
	objects := &memObjects{}
	svc := app.NewUploadService(objects, 1<<20)

	url, err := svc.Upload(context.Background(), bytes.NewReader(pngBytes(t)))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !regexp.MustCompile(`^/uploads/\d{4}/\d{2}/[0-9a-f-]{36}\.png$`).MatchString(url) {
		t.Fatalf("url: %q", url)
	}
	if len(objects.keys) != 1 {
		t.Fatalf("keys: %v", objects.keys)
	}
}

func TestUpload_Rejects(t *testing.T) {
	objects := &memObjects{}
	svc := app.NewUploadService(objects, 256)
	ctx := context.Background()

	if _, err := svc.Upload(ctx, strings.NewReader("hello, not an image")); !errors.Is(err, domain.ErrUnsupported) {
		t.Fatalf("text: %v", err)
	}
	corrupt := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)
	var verr *domain.ValidationError
	if _, err := svc.Upload(ctx, bytes.NewReader(corrupt)); !errors.As(err, &verr) {
		t.Fatalf("corrupt png: %v", err)
	}
	if _, err := svc.Upload(ctx, bytes.NewReader(bytes.Repeat([]byte{1}, 300))); !errors.Is(err, domain.ErrTooLarge) {
		t.Fatalf("too large: %v", err)
	}
	if _, err := svc.Upload(ctx, bytes.NewReader(nil)); !errors.As(err, &verr) {
		t.Fatalf("empty: %v", err)
	}
	if len(objects.keys) != 0 {
		t.Fatalf("rejected files stored: %v", objects.keys)
	}
}

func TestUpload_StorageError(t *testing.T) {
	svc := app.NewUploadService(&memObjects{err: errBoom}, 1<<20)
	if _, err := svc.Upload(context.Background(), bytes.NewReader(pngBytes(t))); !errors.Is(err, errBoom) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
