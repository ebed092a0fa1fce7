package ports

import "context"

// ExportUploader copies exported files to remote storage
type ExportUploader interface {
	// Upload sends files to dest (for example s3://bucket/prefix) and returns
	// the remote locations
	Upload(ctx context.Context, dest string, files []string) ([]string, error)
}

// Release describes a published version
type Release struct {
	Version string
	URL     string
}

// UpdateChecker queries the latest published release
type UpdateChecker interface {
	LatestRelease(ctx context.Context) (Release, error)
}
