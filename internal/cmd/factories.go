package cmd

import (
	"github.com/paramdex/paramdex/internal/adapters/objectstore"
	"github.com/paramdex/paramdex/internal/adapters/release"
	adapterstorage "github.com/paramdex/paramdex/internal/adapters/storage"
	"github.com/paramdex/paramdex/internal/config"
	"github.com/paramdex/paramdex/internal/services"
	"github.com/paramdex/paramdex/version"
)

// releaseRepo is the GitHub repository queried for new releases
const releaseRepo = "paramdex/paramdex"

// Container holds all dependencies for the application
type Container struct {
	ArchiveService   *services.ArchiveService
	Metrics          *services.Metrics
	NamesService     *services.NamesService
	UpdateService    *services.UpdateService
	ViewStateService *services.ViewStateService
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) *Container {
	metrics := services.NewMetrics()

	archive := adapterstorage.NewSQLiteArchive()
	layouts := adapterstorage.NewJSONLayoutSource()
	uploader := objectstore.NewS3Uploader(objectstore.ConfigFromEnv())
	checker := release.NewGitHubChecker(releaseRepo)

	return &Container{
		ArchiveService:   services.NewArchiveService(archive, layouts, uploader, metrics),
		Metrics:          metrics,
		NamesService:     services.NewNamesService(settings.ResolvedNamesDir()),
		UpdateService:    services.NewUpdateService(checker, version.Version),
		ViewStateService: services.NewViewStateService(config.GetSettingsPath()),
	}
}

// Close releases resources held by the container. The archive adapter opens
// its database per operation, so there is nothing to close yet.
func (c *Container) Close() error {
	return nil
}
