// Package storage persists uploaded files into a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"bootcamper/config"
	"bootcamper/internal/domain/lifecycle"
	"bootcamper/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	// Registers the gs:// and mem:// URL schemes.
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const fileScheme = "file://"

// Params defines the dependencies for the photo bucket
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobPhotoStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// New opens the upload bucket and closes it when the application stops.
func New(params Params) (service.PhotoStorage, error) {
	if params.Config.Upload == nil || params.Config.Upload.BucketURL == "" {
		return nil, errors.New("upload.bucketUrl is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := openBucket(ctx, params.Config.Upload.BucketURL)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Photo bucket opened", slog.String("url", params.Config.Upload.BucketURL))

	return NewBlobPhotoStorage(bucket, params.Logger), nil
}

// NewBlobPhotoStorage wraps an already opened bucket.
func NewBlobPhotoStorage(bucket *blob.Bucket, logger *slog.Logger) service.PhotoStorage {
	return &blobPhotoStorage{bucket: bucket, logger: logger}
}

// openBucket accepts relative directories such as file://./public/uploads,
// which the generic file URL opener rejects.
func openBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	if dir, ok := strings.CutPrefix(bucketURL, fileScheme); ok && !strings.HasPrefix(dir, "/") {
		if i := strings.IndexByte(dir, '?'); i >= 0 {
			dir = dir[:i]
		}

		bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, errors.Wrapf(err, "open upload directory %s", dir)
		}

		return bucket, nil
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open upload bucket %s", bucketURL)
	}

	return bucket, nil
}

func (s *blobPhotoStorage) Save(ctx context.Context, name, contentType string, r io.Reader) error {
	// Cancelling the writer's context before Close aborts the write, keeping the previous blob.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, name, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "open writer for %s", name)
	}

	written, err := io.Copy(w, r)
	if err != nil {
		cancel()
		_ = w.Close()

		return errors.Wrapf(err, "write %s", name)
	}

	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "commit %s", name)
	}

	s.logger.DebugContext(ctx, "Photo stored",
		slog.String("name", name),
		slog.Int64("bytes", written),
	)

	return nil
}
