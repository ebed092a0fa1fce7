// Package objectstore uploads exported archives to S3-compatible storage.
package objectstore

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/paramdex/paramdex/internal/logging"
	"github.com/paramdex/paramdex/internal/ports"
)

const (
	scheme         = "s3://"
	defaultRegion  = "us-east-1"
	uploadParallel = 4
)

// Config selects the S3 endpoint. Credentials come from the default AWS chain.
type Config struct {
	Region    string
	Endpoint  string // optional, for MinIO and other compatible stores
	PathStyle bool

	// HTTPClient replaces the SDK transport when set
	HTTPClient *http.Client
	// Options are applied to the AWS config after the defaults
	Options []func(*config.LoadOptions) error
}

// ConfigFromEnv reads PARAMDEX_S3_REGION, PARAMDEX_S3_ENDPOINT and
// PARAMDEX_S3_PATH_STYLE.
func ConfigFromEnv() Config {
	return Config{
		Region:    os.Getenv("PARAMDEX_S3_REGION"),
		Endpoint:  os.Getenv("PARAMDEX_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("PARAMDEX_S3_PATH_STYLE"), "true"),
	}
}

// S3Uploader implements ports.ExportUploader
type S3Uploader struct {
	cfg   Config
	newID func() string
}

// Verify interface compliance at compile time
var _ ports.ExportUploader = (*S3Uploader)(nil)

// NewS3Uploader creates a new S3Uploader
func NewS3Uploader(cfg Config) *S3Uploader {
	return &S3Uploader{cfg: cfg, newID: uuid.NewString}
}

// IsDestination reports whether dest names an S3 location
func IsDestination(dest string) bool {
	return strings.HasPrefix(dest, scheme)
}

// ParseDestination splits s3://bucket/prefix into bucket and prefix
func ParseDestination(dest string) (bucket, prefix string, err error) {
	if !IsDestination(dest) {
		return "", "", fmt.Errorf("not an s3 destination: %q", dest)
	}
	rest := strings.TrimPrefix(dest, scheme)
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("missing bucket in %q", dest)
	}
	return bucket, strings.Trim(prefix, "/"), nil
}

func (u *S3Uploader) client(ctx context.Context) (*s3.Client, error) {
	region := u.cfg.Region
	if region == "" {
		region = defaultRegion
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	loadOpts = append(loadOpts, u.cfg.Options...)
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if u.cfg.PathStyle {
			o.UsePathStyle = true
		}
		if u.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(u.cfg.Endpoint)
		}
		if u.cfg.HTTPClient != nil {
			o.HTTPClient = u.cfg.HTTPClient
		}
	}), nil
}

// Upload puts every file under <prefix>/<batch id>/<file name> and returns
// the s3:// URLs in file order. The batch id keeps repeated exports apart.
func (u *S3Uploader) Upload(ctx context.Context, dest string, files []string) ([]string, error) {
	bucket, prefix, err := ParseDestination(dest)
	if err != nil {
		return nil, err
	}
	client, err := u.client(ctx)
	if err != nil {
		return nil, err
	}

	batch := u.newID()
	logging.Logger.Info("Uploading export", "bucket", bucket, "prefix", prefix, "batch", batch, "files", len(files))

	urls := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadParallel)
	for i, file := range files {
		key := path.Join(prefix, batch, filepath.Base(file))
		g.Go(func() error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()

			_, err = client.PutObject(ctx, &s3.PutObjectInput{
				Bucket:      aws.String(bucket),
				Key:         aws.String(key),
				Body:        f,
				ContentType: aws.String("application/vnd.sqlite3"),
			})
			if err != nil {
				return fmt.Errorf("failed to upload %s: %w", file, err)
			}
			urls[i] = scheme + bucket + "/" + key
			logging.Logger.Debug("Uploaded export file", "key", key)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logging.Logger.Error("Export upload failed", "error", err)
		return nil, err
	}
	return urls, nil
}
