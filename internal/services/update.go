package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/paramdex/paramdex/internal/logging"
	"github.com/paramdex/paramdex/internal/ports"
)

// UpdateService compares the running version with the latest release
type UpdateService struct {
	checker ports.UpdateChecker
	current string
}

// NewUpdateService creates a new UpdateService for the running version
func NewUpdateService(checker ports.UpdateChecker, current string) *UpdateService {
	return &UpdateService{checker: checker, current: current}
}

// canonical adds the v prefix semver expects
func canonical(v string) string {
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// Enabled reports whether the running version can be compared at all.
// Development builds never check.
func (s *UpdateService) Enabled() bool {
	return semver.IsValid(canonical(s.current))
}

// Check returns the newer release, if any
func (s *UpdateService) Check(ctx context.Context) (ports.Release, bool, error) {
	if !s.Enabled() {
		logging.Logger.Debug("Skipping update check", "version", s.current)
		return ports.Release{}, false, nil
	}

	latest, err := s.checker.LatestRelease(ctx)
	if err != nil {
		logging.Logger.Warn("Update check failed", "error", err)
		return ports.Release{}, false, fmt.Errorf("failed to check for updates: %w", err)
	}

	latestVersion := canonical(latest.Version)
	if !semver.IsValid(latestVersion) {
		logging.Logger.Warn("Latest release has an invalid version", "version", latest.Version)
		return ports.Release{}, false, fmt.Errorf("invalid release version %q", latest.Version)
	}

	newer := semver.Compare(latestVersion, canonical(s.current)) > 0
	logging.Logger.Info("Update check complete", "current", s.current, "latest", latest.Version, "newer", newer)
	return latest, newer, nil
}
